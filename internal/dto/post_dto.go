package dto

type CreatePostRequest struct {
	Text  string   `json:"text" binding:"required"`
	Image string   `json:"image"`
	Tags  []string `json:"tags"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateReplyRequest struct {
	Text string `json:"text" binding:"required"`
}
