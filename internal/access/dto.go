package access

type VerifyPasswordDTO struct {
	Password string `json:"password"`
}

type VerifyPasswordResponse struct {
	Valid bool `json:"valid"`
}

type CommentDTO struct {
	Content  string  `json:"content"`
	Password *string `json:"password,omitempty"`
}

type UpdateCommentDTO struct {
	Content      *string `json:"content,omitempty"`
	IsFromClient *bool   `json:"is_from_client,omitempty"`
}
