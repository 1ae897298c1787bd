package quest

import "questacademy/internal/models"

// WelcomeMessage opens every AI chat transcript.
var WelcomeMessage = models.ChatMessage{
	Sender: "ai",
	Text: `Xin chào Chiến Binh Tri Thức! 👋 Tôi là Game Master AI, người đồng hành cùng bạn trên con đường chinh phục kiến thức.

Hãy chọn một môn học để bắt đầu cuộc phiêu lưu, hoặc bạn có thể "ra lệnh" trực tiếp cho tôi ở dưới đây!

Ví dụ, bạn có thể thử: **"Tạo 5 câu hỏi trắc nghiệm về Lịch sử Việt Nam thời Nguyễn."**

Sẵn sàng chưa nào? Let's gooo! 🚀`,
}

// SubjectKeys lists the catalog subjects in display order.
var SubjectKeys = []string{"toan", "van", "anh", "hoa", "su"}

// Subjects is the built-in quest catalog, keyed by subject key.
var Subjects = map[string]models.Subject{
	"toan": {
		Name: "Toán",
		Icon: "fa-calculator",
		Quests: []models.Quest{
			{
				Name:              "Đại Chiến Phương Trình",
				Description:       "Giải nhanh các phương trình bậc nhất để mở khóa kho báu toán học! Nhanh tay lên bạn ơi!",
				LearningObjective: "Nắm vững cách giải và kiểm tra nghiệm của phương trình bậc nhất một ẩn.",
				Reward:            models.Reward{XP: 100, Coins: 20, Badge: "Nhà Vua Phương Trình"},
				RewardText:        `+100 XP, huy hiệu "Nhà Vua Phương Trình" 👑, 20 xu 🪙`,
				MiniQuiz: []models.QuizQuestion{
					{
						Question:      "Nghiệm của phương trình 3x - 9 = 0 là gì?",
						Options:       []string{"A. x = 3", "B. x = -3", "C. x = 9"},
						CorrectAnswer: "A. x = 3",
					},
					{
						Question:      "Phương trình nào sau đây vô nghiệm?",
						Options:       []string{"A. 0x = 5", "B. 2x = 4", "C. 5x = 0"},
						CorrectAnswer: "A. 0x = 5",
					},
					{
						Question:      "Cho phương trình 2x + 5 = x - 1. Nghiệm của phương trình là:",
						Options:       []string{"A. x = -6", "B. x = 6", "C. x = 4"},
						CorrectAnswer: "A. x = -6",
					},
				},
				AIPromptSuggestion: "Hey AI, tạo cho tớ 5 bài tập điền vào chỗ trống về giải phương trình bậc nhất một ẩn!",
			},
			{
				Name:              "Bí Mật Hằng Đẳng Thức",
				Description:       "Khám phá 7 hằng đẳng thức đáng nhớ và sử dụng chúng như một siêu năng lực giải toán!",
				LearningObjective: "Thuộc và vận dụng thành thạo 7 hằng đẳng thức đáng nhớ.",
				Reward:            models.Reward{XP: 120, Coins: 25, Badge: "Bậc Thầy Biến Đổi"},
				RewardText:        `+120 XP, huy hiệu "Bậc Thầy Biến Đổi" ✨, 25 xu 🪙`,
				MiniQuiz: []models.QuizQuestion{
					{
						Question:      "Khai triển (x + 2)² ta được?",
						Options:       []string{"A. x² + 4x + 4", "B. x² + 2x + 4", "C. x² + 4"},
						CorrectAnswer: "A. x² + 4x + 4",
					},
					{
						Question:      "Biểu thức x² - 9 bằng biểu thức nào sau đây?",
						Options:       []string{"A. (x - 3)²", "B. (x + 3)(x - 3)", "C. (x + 3)²"},
						CorrectAnswer: "B. (x + 3)(x - 3)",
					},
					{
						Question:      "Hằng đẳng thức (A - B)³ là gì?",
						Options:       []string{"A. A³ - 3A²B + 3AB² - B³", "B. A³ - B³", "C. A³ + 3A²B + 3AB² + B³"},
						CorrectAnswer: "A. A³ - 3A²B + 3AB² - B³",
					},
				},
				AIPromptSuggestion: "AI ơi, tạo 3 bài toán rút gọn biểu thức sử dụng hằng đẳng thức đi!",
				MiniGame: models.SequenceGame{
					Title:        "Khai Triển Thần Tốc",
					Instructions: "Sắp xếp các bước để khai triển hằng đẳng thức (a + b)². (Sử dụng các nút mũi tên để di chuyển)",
					Items: []string{
						"Bình phương số thứ nhất: a²",
						"Cộng với 2 lần tích số thứ nhất và số thứ hai: + 2ab",
						"Cộng với bình phương số thứ hai: + b²",
						"Kết quả là: a² + 2ab + b²",
					},
				},
			},
			{
				Name:              "Cuộc Đua Tam Giác Vuông",
				Description:       "Vận dụng định lý Pythagoras để đoạt lấy vương miện nhanh nhất trong cuộc đua hình học!",
				LearningObjective: "Hiểu và áp dụng định lý Pythagoras và định lý đảo trong tam giác vuông.",
				Reward:            models.Reward{XP: 150, Coins: 30, Badge: "Thần Tốc Pythagoras"},
				RewardText:        `+150 XP, huy hiệu "Thần Tốc Pythagoras" ⚡, 30 xu 🪙`,
				MiniQuiz: []models.QuizQuestion{
					{
						Question:      "Tam giác ABC vuông tại A, có AB = 3, AC = 4. Cạnh huyền BC bằng bao nhiêu?",
						Options:       []string{"A. 5", "B. 6", "C. 7"},
						CorrectAnswer: "A. 5",
					},
					{
						Question:      "Bộ ba nào sau đây là độ dài ba cạnh của một tam giác vuông?",
						Options:       []string{"A. (2, 3, 4)", "B. (5, 12, 13)", "C. (6, 7, 8)"},
						CorrectAnswer: "B. (5, 12, 13)",
					},
					{
						Question:      "Định lý Pythagoras phát biểu rằng trong tam giác vuông, bình phương cạnh huyền bằng...?",
						Options:       []string{"A. tổng bình phương hai cạnh góc vuông", "B. hiệu bình phương hai cạnh góc vuông", "C. tích hai cạnh góc vuông"},
						CorrectAnswer: "A. tổng bình phương hai cạnh góc vuông",
					},
				},
				AIPromptSuggestion: "Tạo cho mình 3 bài toán thực tế ứng dụng định lý Pythagoras nha AI!",
			},
		},
	},
	"van": {
		Name: "Ngữ văn",
		Icon: "fa-book-open",
		Quests: []models.Quest{
			{
				Name:              `Giải Mã "Lão Hạc"`,
				Description:       "Thâm nhập vào thế giới nội tâm của Lão Hạc, khám phá những bí ẩn đằng sau câu chuyện cảm động.",
				LearningObjective: `Hiểu được giá trị nhân đạo và giá trị hiện thực của tác phẩm "Lão Hạc".`,
				Reward:            models.Reward{XP: 100, Coins: 20, Badge: "Nhà Phân Tích Tí Hon"},
				RewardText:        `+100 XP, huy hiệu "Nhà Phân Tích Tí Hon" 🕵️, 20 xu 🪙`,
				MiniQuiz: []models.QuizQuestion{
					{
						Question:      "Lão Hạc bán con vật nào?",
						Options:       []string{"A. Con mèo Vàng", "B. Con chó Vàng", "C. Con gà Vàng"},
						CorrectAnswer: "B. Con chó Vàng",
					},
					{
						Question:      "Lão Hạc đã chọn cái chết như thế nào?",
						Options:       []string{"A. Nhảy sông tự tử", "B. Uống bả chó", "C. Thắt cổ"},
						CorrectAnswer: "B. Uống bả chó",
					},
					{
						Question:      `Tác giả của truyện ngắn "Lão Hạc" là ai?`,
						Options:       []string{"A. Nam Cao", "B. Ngô Tất Tố", "C. Vũ Trọng Phụng"},
						CorrectAnswer: "A. Nam Cao",
					},
				},
				AIPromptSuggestion: `AI ơi, tóm tắt truyện "Lão Hạc" trong 5 câu được không?`,
			},
			{
				Name:              "Truy Tìm Biện Pháp Tu Từ",
				Description:       "Trở thành thám tử ngôn ngữ, truy tìm và gọi tên các biện pháp tu từ ẩn giấu trong thơ ca.",
				LearningObjective: "Nhận biết và phân tích tác dụng của các biện pháp tu từ: so sánh, nhân hóa, ẩn dụ, hoán dụ.",
				Reward:            models.Reward{XP: 120, Coins: 25, Badge: "Thám Tử Ngôn Ngữ"},
				RewardText:        `+120 XP, huy hiệu "Thám Tử Ngôn Ngữ" 🔍, 25 xu 🪙`,
				MiniQuiz: []models.QuizQuestion{
					{
						Question:      `Câu "Mặt trời xuống biển như hòn lửa" sử dụng biện pháp tu từ gì?`,
						Options:       []string{"A. Nhân hóa", "B. Ẩn dụ", "C. So sánh"},
						CorrectAnswer: "C. So sánh",
					},
					{
						Question:      "Biện pháp tu từ nào gọi tên sự vật, hiện tượng này bằng tên sự vật, hiện tượng khác có nét tương đồng?",
						Options:       []string{"A. Ẩn dụ", "B. Hoán dụ", "C. Nhân hóa"},
						CorrectAnswer: "A. Ẩn dụ",
					},
					{
						Question:      `"Áo chàm đưa buổi phân ly" là biện pháp tu từ gì?`,
						Options:       []string{"A. So sánh", "B. Hoán dụ", "C. Nhân hóa"},
						CorrectAnswer: "B. Hoán dụ",
					},
				},
				AIPromptSuggestion: "Tạo 5 câu thơ có sử dụng biện pháp nhân hóa giúp mình với, AI!",
				MiniGame: models.MatchingGame{
					Title:        "Ghép Nối Tu Từ",
					Instructions: "Nối các biện pháp tu từ với định nghĩa đúng của chúng. Hãy chọn một mục ở cột trái, sau đó chọn mục tương ứng ở cột phải.",
					Prompts:      []string{"So sánh", "Nhân hóa", "Ẩn dụ", "Hoán dụ"},
					Answers: []string{
						"Đối chiếu sự vật này với sự vật khác có nét tương đồng.",
						"Gán cho sự vật những đặc điểm của con người.",
						"Gọi tên sự vật này bằng tên sự vật khác có nét tương đồng.",
						"Gọi tên sự vật này bằng tên sự vật khác có quan hệ gần gũi.",
					},
				},
			},
		},
	},
	"anh": {
		Name: "Tiếng Anh",
		Icon: "fa-language",
		Quests: []models.Quest{
			{
				Name:              "Du Hành Quá Khứ Đơn",
				Description:       "Lên cỗ máy thời gian và chinh phục thì Quá Khứ Đơn (Past Simple) để kể lại những câu chuyện đã qua!",
				LearningObjective: "Sử dụng thành thạo thì Quá Khứ Đơn với động từ có quy tắc và bất quy tắc.",
				Reward:            models.Reward{XP: 100, Coins: 20, Badge: "Time Traveler"},
				RewardText:        `+100 XP, huy hiệu "Time Traveler" ⏳, 20 xu 🪙`,
				MiniQuiz: []models.QuizQuestion{
					{
						Question:      "Yesterday, I ___ to school.",
						Options:       []string{"A. go", "B. went", "C. goed"},
						CorrectAnswer: "B. went",
					},
					{
						Question:      "She ___ a new book last week.",
						Options:       []string{"A. buy", "B. buys", "C. bought"},
						CorrectAnswer: "C. bought",
					},
					{
						Question:      "___ you finish your homework?",
						Options:       []string{"A. Did", "B. Do", "C. Does"},
						CorrectAnswer: "A. Did",
					},
				},
				AIPromptSuggestion: "Hey AI, create 5 fill-in-the-blank exercises about Past Simple tense!",
			},
			{
				Name:              "Vương Quốc Giới Từ",
				Description:       "Khám phá vương quốc của IN, ON, AT và đặt chúng vào đúng vị trí để hoàn thành bản đồ kho báu.",
				LearningObjective: "Phân biệt và sử dụng đúng các giới từ chỉ thời gian và nơi chốn phổ biến.",
				Reward:            models.Reward{XP: 110, Coins: 22, Badge: "Master of Prepositions"},
				RewardText:        `+110 XP, huy hiệu "Master of Prepositions" 🗺️, 22 xu 🪙`,
				MiniQuiz: []models.QuizQuestion{
					{
						Question:      "My birthday is ___ June.",
						Options:       []string{"A. on", "B. at", "C. in"},
						CorrectAnswer: "C. in",
					},
					{
						Question:      "The meeting is ___ 10 AM.",
						Options:       []string{"A. on", "B. at", "C. in"},
						CorrectAnswer: "B. at",
					},
					{
						Question:      "The picture is ___ the wall.",
						Options:       []string{"A. on", "B. at", "C. in"},
						CorrectAnswer: "A. on",
					},
				},
				AIPromptSuggestion: "AI, give me 5 True/False questions about prepositions of place!",
				MiniGame: models.TrueFalseGame{
					Title:        "Giới Từ Đúng Sai",
					Instructions: "Xác định xem các câu sau sử dụng giới từ đúng hay sai.",
					Statements: []models.Statement{
						{Text: "I live AT Vietnam.", IsTrue: false},
						{Text: "The concert is ON Friday.", IsTrue: true},
						{Text: "He was born IN 1999.", IsTrue: true},
						{Text: "Let's meet IN the bus stop.", IsTrue: false},
					},
				},
			},
		},
	},
	"hoa": {
		Name: "Hóa học",
		Icon: "fa-flask-vial",
		Quests: []models.Quest{
			{
				Name:              "Đấu Trường Phản Ứng",
				Description:       `Cân bằng các phương trình hóa học và tạo ra những "vụ nổ" kiến thức ngoạn mục!`,
				LearningObjective: "Biết cách cân bằng phương trình hóa học đơn giản.",
				Reward:            models.Reward{XP: 140, Coins: 30, Badge: "Nhà Giả Kim"},
				RewardText:        `+140 XP, huy hiệu "Nhà Giả Kim" 🧪, 30 xu 🪙`,
				MiniQuiz: []models.QuizQuestion{
					{
						Question:      "Hệ số cân bằng của phương trình: H₂ + O₂ → H₂O là?",
						Options:       []string{"A. 2, 1, 2", "B. 1, 1, 2", "C. 2, 2, 1"},
						CorrectAnswer: "A. 2, 1, 2",
					},
					{
						Question:      "Phản ứng hóa học là quá trình biến đổi...",
						Options:       []string{"A. chất này thành chất khác", "B. trạng thái của chất", "C. màu sắc của chất"},
						CorrectAnswer: "A. chất này thành chất khác",
					},
					{
						Question:      "Trong phương trình Fe + 2HCl → FeCl₂ + H₂, sản phẩm là gì?",
						Options:       []string{"A. Fe và HCl", "B. FeCl₂ và H₂", "C. Chỉ có FeCl₂"},
						CorrectAnswer: "B. FeCl₂ và H₂",
					},
				},
				AIPromptSuggestion: "Hey AI, tạo 5 bài tập điền vào chỗ trống để cân bằng phương trình hóa học!",
				MiniGame: models.QuickQuizGame{
					Title:        "Quiz Hóa Học Siêu Tốc",
					Instructions: "Chọn đáp án đúng nhất cho các câu hỏi sau.",
					Questions: []models.QuizQuestion{
						{
							Question:      "Chất nào làm quỳ tím hóa đỏ?",
							Options:       []string{"A. Axit", "B. Bazo", "C. Muối"},
							CorrectAnswer: "A. Axit",
						},
						{
							Question:      "Dấu hiệu nào cho thấy có phản ứng hóa học xảy ra?",
							Options:       []string{"A. Có chất mới tạo thành (kết tủa, bay hơi, đổi màu)", "B. Chất chuyển từ rắn sang lỏng", "C. Hòa tan đường vào nước"},
							CorrectAnswer: "A. Có chất mới tạo thành (kết tủa, bay hơi, đổi màu)",
						},
					},
				},
			},
		},
	},
	"su": {
		Name: "Lịch sử",
		Icon: "fa-landmark-dome",
		Quests: []models.Quest{
			{
				Name:              "Dấu Chân Lịch Sử",
				Description:       "Theo dòng thời gian, tìm hiểu về các triều đại phong kiến Việt Nam và những chiến công lừng lẫy.",
				LearningObjective: "Nắm được các mốc thời gian quan trọng của các triều đại Lý, Trần, Lê.",
				Reward:            models.Reward{XP: 100, Coins: 20, Badge: "Sử Gia Tập Sự"},
				RewardText:        `+100 XP, huy hiệu "Sử Gia Tập Sự" 📜, 20 xu 🪙`,
				MiniQuiz: []models.QuizQuestion{
					{
						Question:      "Nhà Lý dời đô về Thăng Long (Hà Nội ngày nay) vào năm nào?",
						Options:       []string{"A. 1010", "B. 1225", "C. 938"},
						CorrectAnswer: "A. 1010",
					},
					{
						Question:      "Vị vua nào đã lãnh đạo cuộc kháng chiến chống quân Mông-Nguyên lần thứ hai và thứ ba?",
						Options:       []string{"A. Lý Thái Tổ", "B. Trần Hưng Đạo", "C. Lê Lợi"},
						CorrectAnswer: "B. Trần Hưng Đạo",
					},
					{
						Question:      "Triều đại nào có bộ luật Hồng Đức nổi tiếng?",
						Options:       []string{"A. Nhà Trần", "B. Nhà Nguyễn", "C. Nhà Lê sơ"},
						CorrectAnswer: "C. Nhà Lê sơ",
					},
				},
				AIPromptSuggestion: "AI, tạo bài tập sắp xếp thứ tự các sự kiện trong cuộc kháng chiến chống Mông-Nguyên!",
				MiniGame: models.SequenceGame{
					Title:        "Dòng Chảy Thời Gian",
					Instructions: "Sắp xếp các triều đại sau theo đúng thứ tự lịch sử. (Sử dụng các nút mũi tên để di chuyển)",
					Items: []string{
						"Nhà Lý",
						"Nhà Trần",
						"Nhà Hồ",
						"Nhà Lê sơ",
						"Nhà Nguyễn",
					},
				},
			},
		},
	},
}

// Find returns a quest by subject key and quest name.
func Find(subjectKey, questName string) (models.Quest, bool) {
	subject, ok := Subjects[subjectKey]
	if !ok {
		return models.Quest{}, false
	}
	for _, q := range subject.Quests {
		if q.Name == questName {
			return q, true
		}
	}
	return models.Quest{}, false
}
