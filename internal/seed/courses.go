package seed

import "github.com/tnqdo/tnqdo-backend/internal/app/models"

// DefaultCourses returns the initial course catalog.
func DefaultCourses() []models.CourseDetail {
	return []models.CourseDetail{
		{
			Course: models.Course{
				ID:          "jlpt-n5",
				Name:        "Tiếng Nhật N5 Cơ Bản",
				Level:       models.LevelN5,
				Description: "Khóa học tiếng Nhật cơ bản cho người mới bắt đầu, học alphabet Hiragana, Katakana và 600 từ vựng cơ bản.",
				Duration:    "3 tháng",
				Price:       1500000,
				Image:       "https://images.unsplash.com/photo-1528360983277-13d401cdc186?auto=format&fit=crop&w=2070&q=80",
				Features:    []string{"Học Hiragana & Katakana", "600 từ vựng N5", "Ngữ pháp cơ bản", "Luyện nghe nói"},
				IsActive:    true,
				CreatedAt:   ts("2024-01-01T00:00:00Z"),
			},
			Syllabus: []models.SyllabusWeek{
				{Week: 1, Topic: "Hiragana & Chào hỏi", Content: []string{"Học bảng chữ cái Hiragana", "Cách chào hỏi cơ bản", "Tự giới thiệu"}},
				{Week: 2, Topic: "Katakana & Số đếm", Content: []string{"Học bảng chữ cái Katakana", "Số đếm từ 1-100", "Ngày tháng năm"}},
				{Week: 3, Topic: "Từ vựng sinh hoạt", Content: []string{"Từ vựng gia đình", "Đồ vật trong nhà", "Hoạt động hàng ngày"}},
				{Week: 4, Topic: "Ngữ pháp cơ bản", Content: []string{"Trợ từ は, が, を", "Động từ nhóm 1,2,3", "Thời hiện tại, quá khứ"}},
			},
			Requirements: []string{"Có đam mê học tiếng Nhật", "Cam kết học tập nghiêm túc", "Tham gia đầy đủ các buổi học"},
			Outcomes:     []string{"Nắm vững kiến thức N5", "Có thể giao tiếp cơ bản", "Sẵn sàng cho cấp độ N4"},
		},
		{
			Course: models.Course{
				ID:          "jlpt-n4",
				Name:        "Tiếng Nhật N4 Trung Cấp",
				Level:       models.LevelN4,
				Description: "Khóa học tiếng Nhật trung cấp với 1500 từ vựng và ngữ pháp phức tạp hơn.",
				Duration:    "4 tháng",
				Price:       2000000,
				Image:       "https://images.unsplash.com/photo-1545569341-9eb8b30979d9?auto=format&fit=crop&w=2070&q=80",
				Features:    []string{"1500 từ vựng N4", "Ngữ pháp trung cấp", "Kanji cơ bản", "Luyện thi N4"},
				IsActive:    true,
				CreatedAt:   ts("2024-01-01T00:00:00Z"),
			},
			Syllabus: []models.SyllabusWeek{
				{Week: 1, Topic: "Ôn tập N5", Content: []string{"Ôn tập Hiragana, Katakana", "Từ vựng N5", "Ngữ pháp cơ bản"}},
				{Week: 2, Topic: "Kanji cơ bản", Content: []string{"50 chữ Kanji đầu tiên", "Cách đọc On, Kun", "Từ ghép Kanji"}},
				{Week: 3, Topic: "Ngữ pháp N4", Content: []string{"Thể て của động từ", "Thể potential", "Thể passive"}},
				{Week: 4, Topic: "Hội thoại nâng cao", Content: []string{"Giao tiếp công việc", "Mua sắm", "Đi du lịch"}},
			},
			Requirements: []string{"Đã hoàn thành N5 hoặc có kiến thức tương đương", "Cam kết học tập nghiêm túc"},
			Outcomes:     []string{"Nắm vững kiến thức N4", "Giao tiếp tự tin hơn", "Sẵn sàng cho cấp độ N3"},
		},
		{
			Course: models.Course{
				ID:          "jlpt-n3",
				Name:        "Tiếng Nhật N3 Nâng Cao",
				Level:       models.LevelN3,
				Description: "Khóa học tiếng Nhật nâng cao với 3000 từ vựng và 600 chữ Kanji.",
				Duration:    "6 tháng",
				Price:       2500000,
				Image:       "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?auto=format&fit=crop&w=2070&q=80",
				Features:    []string{"3000 từ vựng N3", "600 chữ Kanji", "Ngữ pháp nâng cao", "Luyện thi N3"},
				IsActive:    true,
				CreatedAt:   ts("2024-01-01T00:00:00Z"),
			},
			Syllabus: []models.SyllabusWeek{
				{Week: 1, Topic: "Giới thiệu khóa học", Content: []string{"Tổng quan chương trình", "Mục tiêu học tập", "Phương pháp học"}},
			},
			Requirements: []string{"Đã hoàn thành N4 hoặc có kiến thức tương đương", "Cam kết học tập nghiêm túc"},
			Outcomes:     []string{"Nắm vững kiến thức N3", "Giao tiếp thành thạo", "Có thể làm việc bằng tiếng Nhật"},
		},
		{
			Course: models.Course{
				ID:          "business-japanese",
				Name:        "Tiếng Nhật Thương Mại",
				Level:       models.LevelBusiness,
				Description: "Khóa học tiếng Nhật chuyên ngành cho môi trường công việc và kinh doanh.",
				Duration:    "3 tháng",
				Price:       3000000,
				Image:       "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?auto=format&fit=crop&w=2070&q=80",
				Features:    []string{"Tiếng Nhật công sở", "Email & báo cáo", "Thuyết trình", "Giao tiếp khách hàng"},
				IsActive:    true,
				CreatedAt:   ts("2024-01-01T00:00:00Z"),
			},
			Syllabus: []models.SyllabusWeek{
				{Week: 1, Topic: "Giới thiệu khóa học", Content: []string{"Tổng quan chương trình", "Mục tiêu học tập", "Phương pháp học"}},
			},
			Requirements: []string{"Có trình độ N3 trở lên", "Muốn làm việc tại Nhật Bản"},
			Outcomes:     []string{"Giao tiếp thành thạo trong môi trường công việc", "Viết email và báo cáo chuyên nghiệp"},
		},
		{
			Course: models.Course{
				ID:          "anime-translation",
				Name:        "Biên Dịch Anime & Manga",
				Level:       models.LevelProfessional,
				Description: "Khóa đào tạo nghiệp vụ biên dịch anime, manga và light novel.",
				Duration:    "2 tháng",
				Price:       2200000,
				Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=2070&q=80",
				Features:    []string{"Kỹ thuật biên dịch", "Phần mềm chuyên dụng", "Thực hành dự án", "Chứng chỉ hoàn thành"},
				IsActive:    true,
				CreatedAt:   ts("2024-01-01T00:00:00Z"),
			},
			Syllabus: []models.SyllabusWeek{
				{Week: 1, Topic: "Giới thiệu khóa học", Content: []string{"Tổng quan chương trình", "Mục tiêu học tập", "Phương pháp học"}},
			},
			Requirements: []string{"Có trình độ N2 trở lên", "Yêu thích anime/manga"},
			Outcomes:     []string{"Có thể biên dịch anime/manga chuyên nghiệp", "Nắm vững các công cụ biên dịch"},
		},
		{
			Course: models.Course{
				ID:          "teaching-methodology",
				Name:        "Nghiệp Vụ Dạy Tiếng Nhật",
				Level:       models.LevelProfessional,
				Description: "Khóa đào tạo phương pháp giảng dạy tiếng Nhật hiệu quả.",
				Duration:    "3 tháng",
				Price:       2800000,
				Image:       "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&w=2070&q=80",
				Features:    []string{"Phương pháp giảng dạy", "Quản lý lớp học", "Thiết kế bài học", "Đánh giá học viên"},
				IsActive:    true,
				CreatedAt:   ts("2024-01-01T00:00:00Z"),
			},
			Syllabus: []models.SyllabusWeek{
				{Week: 1, Topic: "Giới thiệu khóa học", Content: []string{"Tổng quan chương trình", "Mục tiêu học tập", "Phương pháp học"}},
			},
			Requirements: []string{"Có trình độ N2 trở lên", "Muốn trở thành giáo viên tiếng Nhật"},
			Outcomes:     []string{"Nắm vững phương pháp giảng dạy", "Có thể quản lý lớp học hiệu quả"},
		},
	}
}
