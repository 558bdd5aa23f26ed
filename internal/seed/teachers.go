package seed

import "github.com/tnqdo/tnqdo-backend/internal/app/models"

// DefaultTeachers returns the initial instructor profiles.
func DefaultTeachers() []models.TeacherDetail {
	return []models.TeacherDetail{
		{
			Teacher: models.Teacher{
				ID:              "teacher-quang-dung",
				Name:            "Thầy Quang Dũng",
				Title:           "Giám đốc Học thuật & Giảng viên chính",
				Avatar:          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=1000&q=80",
				Bio:             "Với hơn 10 năm kinh nghiệm giảng dạy tiếng Nhật, thầy Quang Dũng đã đào tạo hàng nghìn học viên đạt chứng chỉ JLPT. Chuyên gia về phương pháp giảng dạy hiện đại và tương tác.",
				Specializations: []string{"JLPT N5-N1", "Tiếng Nhật Thương mại", "Phương pháp giảng dạy"},
				Experience:      "10+ năm",
				Education:       []string{"Thạc sĩ Ngôn ngữ Nhật - Đại học Ngoại ngữ Hà Nội", "Chứng chỉ Giảng dạy Tiếng Nhật - Tokyo University"},
				Certifications:  []string{"JLPT N1", "JTEST A Level", "Teaching Japanese as Foreign Language"},
				TeachingStyle:   "Tương tác, thực hành nhiều, học qua trò chơi và tình huống thực tế",
				CoursesCount:    15,
				StudentsCount:   2500,
				Rating:          4.9,
				IsActive:        true,
				CreatedAt:       ts("2020-01-01T00:00:00Z"),
			},
			SocialLinks: models.SocialLinks{
				Facebook: "https://facebook.com/quangdung.japanese",
				LinkedIn: "https://linkedin.com/in/quangdung",
				YouTube:  "https://youtube.com/@QuangDungJapanese",
			},
			Achievements: []string{
				"Giải thưởng Giảng viên Xuất sắc 2023",
				"Tác giả sách 'Học tiếng Nhật hiệu quả'",
				"Chuyên gia tư vấn chương trình JLPT",
				"Founder Otaku Online Group",
			},
			CoursesTeaching: []string{"jlpt-n5", "jlpt-n4", "jlpt-n3", "teaching-methodology"},
			Testimonials: []models.Testimonial{
				{
					StudentName: "Nguyễn Thị Mai",
					Comment:     "Thầy dạy rất tâm huyết và dễ hiểu. Em đã pass N3 trong lần thi đầu tiên!",
					Rating:      5,
					Date:        "2024-01-15",
				},
				{
					StudentName: "Trần Văn Nam",
					Comment:     "Phương pháp giảng dạy của thầy rất hiệu quả, giúp em có được công việc tại công ty Nhật.",
					Rating:      5,
					Date:        "2024-02-20",
				},
			},
		},
		{
			Teacher: models.Teacher{
				ID:              "teacher-minh-anh",
				Name:            "Cô Minh Anh",
				Title:           "Giảng viên Tiếng Nhật & Chuyên gia Anime-Manga",
				Avatar:          "https://images.unsplash.com/photo-1494790108755-2616b332c5db?auto=format&fit=crop&w=1000&q=80",
				Bio:             "Chuyên gia về văn hóa Nhật Bản và biên dịch Anime-Manga. Cô Minh Anh mang đến phương pháp học tiếng Nhật thông qua văn hóa pop một cách sinh động và thú vị.",
				Specializations: []string{"Biên dịch Anime-Manga", "Văn hóa Nhật Bản", "JLPT N5-N3"},
				Experience:      "7 năm",
				Education:       []string{"Cử nhân Ngôn ngữ Nhật - Đại học Khoa học Xã hội và Nhân văn", "Khóa đào tạo Biên dịch chuyên nghiệp"},
				Certifications:  []string{"JLPT N1", "Chung chỉ Biên dịch Anime-Manga"},
				TeachingStyle:   "Học qua phim ảnh, manga, và các tình huống văn hóa thực tế",
				CoursesCount:    8,
				StudentsCount:   1200,
				Rating:          4.8,
				IsActive:        true,
				CreatedAt:       ts("2021-06-01T00:00:00Z"),
			},
			SocialLinks: models.SocialLinks{
				Facebook: "https://facebook.com/minhanh.anime",
				YouTube:  "https://youtube.com/@MinhAnhAnime",
			},
			Achievements: []string{
				"Chuyên gia biên dịch Anime hàng đầu",
				"Dịch giả cho 50+ bộ Anime nổi tiếng",
				"Giải thưởng Người dịch xuất sắc 2022",
			},
			CoursesTeaching: []string{"anime-translation", "jlpt-n5", "jlpt-n4"},
			Testimonials: []models.Testimonial{
				{
					StudentName: "Lê Thị Hoa",
					Comment:     "Cô dạy rất vui và sinh động. Em học được rất nhiều về văn hóa Nhật qua anime.",
					Rating:      5,
					Date:        "2024-01-10",
				},
			},
		},
		{
			Teacher: models.Teacher{
				ID:              "teacher-duc-thanh",
				Name:            "Thầy Đức Thành",
				Title:           "Giảng viên Tiếng Nhật Thương mại",
				Avatar:          "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=1000&q=80",
				Bio:             "Với kinh nghiệm làm việc tại các công ty Nhật Bản, thầy Đức Thành chuyên về tiếng Nhật thương mại và kỹ năng giao tiếp trong môi trường công việc chuyên nghiệp.",
				Specializations: []string{"Tiếng Nhật Thương mại", "Giao tiếp công sở", "JLPT N2-N1"},
				Experience:      "8 năm",
				Education:       []string{"Thạc sĩ Quản trị Kinh doanh - Keio University", "Cử nhân Ngôn ngữ Nhật - Đại học Ngoại thương"},
				Certifications:  []string{"JLPT N1", "Business Japanese Proficiency Test", "TOEIC 950"},
				TeachingStyle:   "Thực hành giao tiếp, mô phỏng tình huống công việc thực tế",
				CoursesCount:    6,
				StudentsCount:   800,
				Rating:          4.7,
				IsActive:        true,
				CreatedAt:       ts("2022-03-01T00:00:00Z"),
			},
			SocialLinks: models.SocialLinks{
				LinkedIn: "https://linkedin.com/in/ducthanh",
			},
			Achievements: []string{
				"Cựu nhân viên Toyota Việt Nam",
				"Chuyên gia đào tạo Tiếng Nhật Thương mại",
				"Tư vấn cho 100+ sinh viên đi làm tại Nhật",
			},
			CoursesTeaching: []string{"business-japanese", "jlpt-n2", "jlpt-n1"},
			Testimonials: []models.Testimonial{
				{
					StudentName: "Phạm Văn Tùng",
					Comment:     "Thầy có kinh nghiệm thực tế rất tốt, giúp em chuẩn bị tốt cho môi trường làm việc Nhật Bản.",
					Rating:      5,
					Date:        "2024-03-05",
				},
			},
		},
	}
}
