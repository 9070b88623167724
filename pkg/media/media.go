package media

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxFileSize = 5 << 20 // 5MB limit

const PostsPrefix = "media/posts"

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// Media wraps an uploaded image once it has passed validation. The stored
// file name is prefixed with the owning resource's uid so stale uploads can
// be tracked back to it.
type Media struct {
	uid        string
	headerName string
	fileName   string
	extension  string
	data       []byte
}

func NewMedia(uid string, data []byte, headerName string) (*Media, error) {
	if len(data) == 0 {
		return nil, errors.New("the given file is empty")
	}

	if len(data) > maxFileSize {
		return nil, fmt.Errorf("the given file exceeds the %d bytes limit", maxFileSize)
	}

	extension := strings.ToLower(filepath.Ext(headerName))

	if _, ok := allowedExtensions[extension]; !ok {
		return nil, fmt.Errorf("unsupported file extension [%s]", extension)
	}

	return &Media{
		uid:        uid,
		headerName: headerName,
		extension:  extension,
		fileName:   fmt.Sprintf("%s-%s%s", uid, uuid.NewString(), extension),
		data:       data,
	}, nil
}

func (m *Media) GetFileName() string {
	return m.fileName
}

func (m *Media) GetExtension() string {
	return m.extension
}

func (m *Media) GetHeaderName() string {
	return m.headerName
}

func (m *Media) ContentType() string {
	return allowedExtensions[m.extension]
}

func (m *Media) Key(prefix string) string {
	return path.Join(prefix, m.fileName)
}
