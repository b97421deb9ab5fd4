// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package sec

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL derives a deterministic avatar URL from an email address.
//
// The Gravatar contract hashes the trimmed, lowercased email with MD5. The
// query parameters request a 200px image, PG-rated, with the "mystery man"
// fallback for addresses without a registered avatar.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	digest := md5.Sum([]byte(normalized))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(digest[:]) + "?s=200&r=pg&d=mm"
}
