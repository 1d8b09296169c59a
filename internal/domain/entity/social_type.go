// Package entity contains the core business objects of the project.
package entity

// SocialType identifies the external provider a social member came from.
type SocialType string

const (
	// SocialTypeGoogle is the Google OAuth provider.
	SocialTypeGoogle SocialType = "GOOGLE"
	// SocialTypeKakao is the Kakao OAuth provider.
	SocialTypeKakao SocialType = "KAKAO"
	// SocialTypeNaver is the Naver OAuth provider.
	SocialTypeNaver SocialType = "NAVER"
)

// String returns the string representation of the SocialType.
func (s SocialType) String() string {
	return string(s)
}

// IsValid checks if the SocialType is one of the supported providers.
func (s SocialType) IsValid() bool {
	switch s {
	case SocialTypeGoogle, SocialTypeKakao, SocialTypeNaver:
		return true
	default:
		return false
	}
}

// ParseSocialType maps a lowercase provider slug (as it appears in callback
// paths) to a SocialType.
func ParseSocialType(provider string) (SocialType, bool) {
	switch provider {
	case "google":
		return SocialTypeGoogle, true
	case "kakao":
		return SocialTypeKakao, true
	case "naver":
		return SocialTypeNaver, true
	default:
		return "", false
	}
}
