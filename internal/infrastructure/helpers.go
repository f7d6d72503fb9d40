package infrastructure

import (
	"net/url"
	"strings"
)

// IsRemoteURL сообщает, что ссылка на изображение уже является абсолютным http(s) URL
// и не требует подписи в объектном хранилище.
func IsRemoteURL(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}
