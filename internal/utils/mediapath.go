package utils

import (
	"fmt"
	"path"
	"strings"
)

// AvatarPath builds the storage path for a profile avatar. Files are
// namespaced by profile id and nickname, keeping the extension of the
// uploaded file.
func AvatarPath(profileID uint64, nickname, filename string) string {
	return mediaPath("avatars", profileID, nickname, filename)
}

// PostImagePath builds the storage path for a post image, namespaced by
// post id and title.
func PostImagePath(postID uint64, title, filename string) string {
	return mediaPath("posts", postID, title, filename)
}

func mediaPath(dir string, id uint64, name, filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	return path.Join(dir, fmt.Sprintf("%d%s.%s", id, name, ext))
}
