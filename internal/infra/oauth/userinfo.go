// Package oauth normalizes the user-info payloads of the supported social
// providers into a single provider-independent shape.
package oauth

import (
	"encoding/json"
	"fmt"
	"strconv"

	"shop/internal/domain/entity"
)

// UserInfo exposes the provider-independent view of a social user-info
// payload. Absent fields resolve to empty strings, never to a panic.
type UserInfo interface {
	// ID returns the provider-scoped identifier as a string.
	ID() string

	// Nickname returns the display name reported by the provider.
	Nickname() string

	// ImageURL returns the profile image URL reported by the provider.
	ImageURL() string
}

// For selects the extractor matching the given provider. The second
// return is false for providers outside the supported set.
func For(socialType entity.SocialType, attributes map[string]any) (UserInfo, bool) {
	switch socialType {
	case entity.SocialTypeGoogle:
		return googleUserInfo{attributes: attributes}, true
	case entity.SocialTypeKakao:
		return kakaoUserInfo{attributes: attributes}, true
	case entity.SocialTypeNaver:
		return naverUserInfo{attributes: attributes}, true
	default:
		return nil, false
	}
}

// googleUserInfo reads Google's flat payload. The identifier is the
// OpenID Connect "sub" claim.
type googleUserInfo struct {
	attributes map[string]any
}

func (g googleUserInfo) ID() string {
	return stringAttr(g.attributes, "sub")
}

func (g googleUserInfo) Nickname() string {
	return stringAttr(g.attributes, "name")
}

func (g googleUserInfo) ImageURL() string {
	return stringAttr(g.attributes, "picture")
}

// kakaoUserInfo reads Kakao's payload. The numeric id sits at the top
// level; profile fields are nested under kakao_account.profile.
type kakaoUserInfo struct {
	attributes map[string]any
}

func (k kakaoUserInfo) ID() string {
	id, ok := k.attributes["id"]
	if !ok || id == nil {
		return ""
	}

	// Kakao reports the id as a number, not a string. JSON decoding
	// yields float64, so format without an exponent.
	switch v := id.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (k kakaoUserInfo) Nickname() string {
	return stringAttr(k.profile(), "nickname")
}

func (k kakaoUserInfo) ImageURL() string {
	return stringAttr(k.profile(), "thumbnail_image_url")
}

func (k kakaoUserInfo) profile() map[string]any {
	return mapAttr(mapAttr(k.attributes, "kakao_account"), "profile")
}

// naverUserInfo reads Naver's payload, which wraps the user fields one
// level under "response".
type naverUserInfo struct {
	attributes map[string]any
}

func (n naverUserInfo) ID() string {
	return stringAttr(n.response(), "id")
}

func (n naverUserInfo) Nickname() string {
	return stringAttr(n.response(), "nickname")
}

func (n naverUserInfo) ImageURL() string {
	return stringAttr(n.response(), "profile_image")
}

func (n naverUserInfo) response() map[string]any {
	return mapAttr(n.attributes, "response")
}

func stringAttr(attributes map[string]any, key string) string {
	if attributes == nil {
		return ""
	}

	value, _ := attributes[key].(string)

	return value
}

func mapAttr(attributes map[string]any, key string) map[string]any {
	if attributes == nil {
		return nil
	}

	value, _ := attributes[key].(map[string]any)

	return value
}
