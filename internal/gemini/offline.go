package gemini

import (
	"fmt"

	"questacademy/internal/models"
)

// Offline responses keep the app usable without an API key. They are
// deliberately deterministic so the UI and tests behave the same on
// every run.

func offlineChatReply(message string) string {
	return fmt.Sprintf(`🤖 (Chế độ ngoại tuyến) Tôi đã nhận được yêu cầu: %q.

Hiện tại tôi chưa kết nối được với máy chủ AI, nhưng đừng lo! Bạn vẫn có thể hoàn thành các nhiệm vụ có sẵn để tích lũy XP. Khi quản trị viên cấu hình khóa API, tôi sẽ trả lời chi tiết hơn nhiều đấy! 🚀`, message)
}

func offlineQuest(topic string, numQuestions int) GeneratedQuest {
	questions := make([]models.QuizQuestion, numQuestions)
	for i := range questions {
		questions[i] = models.QuizQuestion{
			Question:      fmt.Sprintf("Câu %d: Đâu là phát biểu đúng về chủ đề %q?", i+1, topic),
			Options:       []string{"A. Phát biểu thứ nhất", "B. Phát biểu thứ hai", "C. Phát biểu thứ ba"},
			CorrectAnswer: "A. Phát biểu thứ nhất",
		}
	}
	return GeneratedQuest{
		Name:        fmt.Sprintf("Thử Thách Ngoại Tuyến: %s", topic),
		Description: fmt.Sprintf("Một nhiệm vụ luyện tập nhanh về %q, tạo sẵn khi chưa kết nối AI.", topic),
		RewardText:  `+50 XP, huy hiệu "Nhà Thám Hiểm AI" 🤖, 10 xu 🪙`,
		Questions:   questions,
	}
}
