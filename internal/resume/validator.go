// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resume

import (
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/gabriel-vasile/mimetype"
)

const (
	MimePDF  = "application/pdf"
	MimeDoc  = "application/msword"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// MaxSize 5 MiB，包含边界
	MaxSize int64 = 5 << 20

	mimeOctetStream = "application/octet-stream"
)

var (
	ErrUnsupportedType = bizerr.Validation("unsupported file type")
	ErrTooLarge        = bizerr.Validation("file too large")
)

// File 用户选择的文件，MimeType 是浏览器或者调用方声明的类型
type File struct {
	Name     string
	MimeType string
	Size     int64
	Content  []byte
}

func NewFile(name, mimeType string, content []byte) File {
	return File{
		Name:     name,
		MimeType: mimeType,
		Size:     int64(len(content)),
		Content:  content,
	}
}

// Artifact 校验通过的简历，之后不再修改
type Artifact struct {
	fileName string
	mimeType string
	size     int64
	content  []byte
}

func (a Artifact) FileName() string { return a.fileName }
func (a Artifact) MimeType() string { return a.mimeType }
func (a Artifact) Size() int64      { return a.size }

// Content 返回副本
func (a Artifact) Content() []byte {
	res := make([]byte, len(a.content))
	copy(res, a.content)
	return res
}

// Validate 按顺序检查类型和大小，第一个不满足的规则决定错误
func Validate(f File) (Artifact, error) {
	mimeType := f.MimeType
	if mimeType == "" || mimeType == mimeOctetStream {
		mimeType = mimetype.Detect(f.Content).String()
	}
	if !allowed(mimeType) {
		return Artifact{}, ErrUnsupportedType
	}
	if f.Size > MaxSize {
		return Artifact{}, ErrTooLarge
	}
	content := make([]byte, len(f.Content))
	copy(content, f.Content)
	return Artifact{
		fileName: f.Name,
		mimeType: mimeType,
		size:     f.Size,
		content:  content,
	}, nil
}

func allowed(mimeType string) bool {
	switch mimeType {
	case MimePDF, MimeDoc, MimeDocx:
		return true
	default:
		return false
	}
}
