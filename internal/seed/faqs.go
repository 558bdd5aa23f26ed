package seed

import "github.com/tnqdo/tnqdo-backend/internal/app/models"

// DefaultFAQs returns the initial FAQ entries.
func DefaultFAQs() []models.FAQ {
	return []models.FAQ{
		{
			ID:        "faq-1",
			Question:  "Khóa học tiếng Nhật N5 kéo dài bao lâu?",
			Answer:    "Khóa học N5 kéo dài 3 tháng với 3 buổi/tuần, mỗi buổi 2 tiếng. Tổng cộng khoảng 72 tiếng học.",
			Category:  "courses",
			Order:     1,
			IsActive:  true,
			CreatedAt: ts("2024-01-01T00:00:00Z"),
		},
		{
			ID:        "faq-2",
			Question:  "Tôi có thể học online hay chỉ offline?",
			Answer:    "Chúng tôi cung cấp cả hai hình thức học online và offline. Bạn có thể chọn hình thức phù hợp với lịch trình của mình.",
			Category:  "general",
			Order:     2,
			IsActive:  true,
			CreatedAt: ts("2024-01-01T00:00:00Z"),
		},
		{
			ID:        "faq-3",
			Question:  "Học phí có bao gồm tài liệu học tập không?",
			Answer:    "Có, học phí đã bao gồm tất cả tài liệu học tập, bài tập, và quyền truy cập vào hệ thống học online.",
			Category:  "payment",
			Order:     3,
			IsActive:  true,
			CreatedAt: ts("2024-01-01T00:00:00Z"),
		},
		{
			ID:        "faq-4",
			Question:  "Có hỗ trợ tư vấn việc làm sau khi học xong không?",
			Answer:    "Có, chúng tôi có dịch vụ tư vấn nghề nghiệp và giới thiệu việc làm tại các công ty Nhật Bản cho học viên xuất sắc.",
			Category:  "services",
			Order:     4,
			IsActive:  true,
			CreatedAt: ts("2024-01-01T00:00:00Z"),
		},
		{
			ID:        "faq-5",
			Question:  "Tôi có thể hoàn tiền nếu không hài lòng không?",
			Answer:    "Có, chúng tôi có chính sách hoàn tiền trong vòng 7 ngày đầu nếu bạn không hài lòng với chất lượng khóa học.",
			Category:  "payment",
			Order:     5,
			IsActive:  true,
			CreatedAt: ts("2024-01-01T00:00:00Z"),
		},
		{
			ID:        "faq-6",
			Question:  "Làm sao để đăng ký khóa học?",
			Answer:    "Bạn có thể đăng ký trực tiếp trên website, qua điện thoại, hoặc đến trực tiếp văn phòng của chúng tôi để được tư vấn chi tiết.",
			Category:  "registration",
			Order:     6,
			IsActive:  true,
			CreatedAt: ts("2024-01-01T00:00:00Z"),
		},
		{
			ID:        "faq-7",
			Question:  "Có cần kiến thức nền tảng để học tiếng Nhật không?",
			Answer:    "Không cần. Khóa N5 dành cho người mới bắt đầu hoàn toàn. Chúng tôi sẽ dạy từ cơ bản nhất.",
			Category:  "courses",
			Order:     7,
			IsActive:  true,
			CreatedAt: ts("2024-01-01T00:00:00Z"),
		},
		{
			ID:        "faq-8",
			Question:  "Có lớp học thử không?",
			Answer:    "Có, chúng tôi có buổi học thử miễn phí để bạn trải nghiệm phương pháp giảng dạy trước khi đăng ký.",
			Category:  "general",
			Order:     8,
			IsActive:  true,
			CreatedAt: ts("2024-01-01T00:00:00Z"),
		},
	}
}
