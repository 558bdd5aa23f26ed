package seed

import "github.com/tnqdo/tnqdo-backend/internal/app/models"

// DefaultBlogPosts returns the initial blog content.
func DefaultBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:      "blog-1",
			Title:   "5 Mẹo Học Kanji Hiệu Quả Cho Người Mới Bắt Đầu",
			Slug:    "5-meo-hoc-kanji-hieu-qua",
			Excerpt: "Học Kanji không còn là nỗi ác mộng với 5 phương pháp đã được kiểm chứng này. Khám phá cách học thông minh để nhớ lâu hơn.",
			Content: `<h2>Giới thiệu</h2>
<p>Kanji là một trong những thử thách lớn nhất khi học tiếng Nhật. Với hơn 2000 chữ Kanji cần thiết để đọc hiểu tiếng Nhật thông thường, nhiều người cảm thấy choáng ngợp. Nhưng đừng lo, với 5 mẹo sau đây, bạn sẽ học Kanji hiệu quả hơn rất nhiều!</p>

<h3>1. Sử dụng Phương Pháp Mnemonics</h3>
<p>Mnemonics là kỹ thuật liên kết chữ Kanji với câu chuyện hoặc hình ảnh. Ví dụ, chữ 森 (rừng) được tạo bởi 3 chữ 木 (cây) - nhiều cây tạo thành rừng!</p>

<h3>2. Viết Tay Thay Vì Gõ Máy</h3>
<p>Nghiên cứu chứng minh rằng việc viết tay giúp bộ nhớ ghi nhớ tốt hơn 50% so với gõ máy. Hãy dành 10-15 phút mỗi ngày để luyện viết.</p>

<h3>3. Học Theo Bộ Thủ (Radicals)</h3>
<p>214 bộ thủ cơ bản là nền tảng của hàng ngàn chữ Kanji. Nắm vững bộ thủ sẽ giúp bạn đoán nghĩa và cách đọc của chữ mới.</p>

<h3>4. Flashcards Với Spaced Repetition</h3>
<p>Sử dụng các ứng dụng như Anki để ôn tập định kỳ. Phương pháp SRS giúp bạn nhớ lâu hơn với ít thời gian hơn.</p>

<h3>5. Đọc Truyện Tranh Manga</h3>
<p>Manga là cách học vui và hiệu quả. Bắt đầu với manga dành cho trẻ em rồi dần nâng cao độ khó.</p>

<h2>Kết Luận</h2>
<p>Học Kanji cần kiên trì và phương pháp đúng đắn. Đừng vội vàng, hãy học đều đặn mỗi ngày và bạn sẽ thấy tiến bộ rõ rệt!</p>`,
			Image:    "https://images.unsplash.com/photo-1513258496099-48168024aec0?auto=format&fit=crop&w=800&q=80",
			Category: "Học tiếng Nhật",
			Tags:     []string{"Kanji", "Học tiếng Nhật", "Mẹo học tập"},
			Author: models.Author{
				Name:   "Nguyễn Quang Triệu",
				Avatar: "https://ui-avatars.com/api/?name=NQT&background=1b2460&color=fff",
			},
			PublishedAt: ts("2025-01-15T10:00:00Z"),
			UpdatedAt:   ts("2025-01-15T10:00:00Z"),
			IsPublished: true,
			Views:       245,
		},
		{
			ID:      "blog-2",
			Title:   "Lộ Trình Học JLPT N5 Trong 3 Tháng",
			Slug:    "lo-trinh-hoc-jlpt-n5-trong-3-thang",
			Excerpt: "Bạn muốn đạt N5 trong thời gian ngắn? Đây là lộ trình học chi tiết từng tuần giúp bạn chinh phục JLPT N5 chỉ sau 3 tháng.",
			Content: `<h2>Giới Thiệu</h2>
<p>JLPT N5 là cấp độ cơ bản nhất của kỳ thi năng lực tiếng Nhật. Với lộ trình học đúng đắn, bạn hoàn toàn có thể đạt được trong 3 tháng!</p>

<h3>Tháng 1: Nền Tảng</h3>
<ul>
<li><strong>Tuần 1-2:</strong> Học Hiragana và Katakana hoàn toàn thuộc</li>
<li><strong>Tuần 3-4:</strong> 100 từ vựng N5 đầu tiên + Ngữ pháp cơ bản (です/ます)</li>
</ul>

<h3>Tháng 2: Phát Triển</h3>
<ul>
<li><strong>Tuần 5-6:</strong> 200 từ vựng tiếp theo + Ngữ pháp trợ từ (は、が、を)</li>
<li><strong>Tuần 7-8:</strong> Kanji cơ bản (50 chữ đầu tiên) + Luyện nghe</li>
</ul>

<h3>Tháng 3: Hoàn Thiện</h3>
<ul>
<li><strong>Tuần 9-10:</strong> Hoàn thành 800 từ vựng N5 + 80 chữ Kanji</li>
<li><strong>Tuần 11-12:</strong> Luyện đề thi + Ôn tập tổng hợp</li>
</ul>

<h2>Tài Liệu Cần Thiết</h2>
<ul>
<li>Sách Minna no Nihongo 1</li>
<li>Đề thi mẫu JLPT N5</li>
<li>App Anki để ôn từ vựng</li>
</ul>`,
			Image:    "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?auto=format&fit=crop&w=800&q=80",
			Category: "JLPT",
			Tags:     []string{"JLPT", "N5", "Lộ trình học"},
			Author: models.Author{
				Name:   "Lê Đình Tân",
				Avatar: "https://ui-avatars.com/api/?name=LDT&background=d1d7fe&color=1b2460",
			},
			PublishedAt: ts("2025-01-20T14:30:00Z"),
			UpdatedAt:   ts("2025-01-20T14:30:00Z"),
			IsPublished: true,
			Views:       189,
		},
		{
			ID:      "blog-3",
			Title:   "Văn Hóa Làm Việc Tại Nhật Bản: Những Điều Cần Biết",
			Slug:    "van-hoa-lam-viec-tai-nhat-ban",
			Excerpt: "Hiểu rõ văn hóa làm việc Nhật Bản sẽ giúp bạn thành công hơn khi làm việc với người Nhật hoặc tại Nhật Bản.",
			Content: `<h2>Giới Thiệu</h2>
<p>Văn hóa làm việc tại Nhật Bản có nhiều điểm khác biệt so với Việt Nam. Việc hiểu và thích nghi với văn hóa này là chìa khóa để thành công.</p>

<h3>1. Đúng Giờ Là Vàng</h3>
<p>Người Nhật rất coi trọng thời gian. Đến muộn dù chỉ 1 phút cũng được coi là thiếu tôn trọng.</p>

<h3>2. Báo Cáo - Liên Lạc - Tư Vấn (報連相)</h3>
<p>Horenso (ほうれんそう) là nguyên tắc vàng: luôn báo cáo tiến độ, liên lạc kịp thời và tham vấn cấp trên.</p>

<h3>3. Làm Việc Nhóm</h3>
<p>Tinh thần đồng đội được đề cao. Quyết định thường được đưa ra theo sự đồng thuận chứ không phải cá nhân.</p>

<h3>4. Chào Hỏi Đúng Cách</h3>
<p>お疲れ様です (Otsukaresama desu) là câu chào chuẩn trong công sở. Cúi chào là dấu hiệu tôn trọng.</p>`,
			Image:    "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?auto=format&fit=crop&w=800&q=80",
			Category: "Văn hóa",
			Tags:     []string{"Văn hóa Nhật", "Làm việc", "Business"},
			Author: models.Author{
				Name:   "Nguyễn Quang Triệu",
				Avatar: "https://ui-avatars.com/api/?name=NQT&background=1b2460&color=fff",
			},
			PublishedAt: ts("2025-01-25T09:00:00Z"),
			UpdatedAt:   ts("2025-01-25T09:00:00Z"),
			IsPublished: true,
			Views:       156,
		},
	}
}
