package dto

type UpdateProfileRequest struct {
	FullName   string `json:"full_name"`
	Bio        string `json:"bio"`
	ProfilePic string `json:"profile_pic"`
	Gender     string `json:"gender"`
}
