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
	"bytes"
	"testing"

	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	pdf := []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n")
	testCases := []struct {
		name     string
		file     File
		wantErr  error
		wantMime string
	}{
		{
			name:     "pdf",
			file:     NewFile("cv.pdf", MimePDF, pdf),
			wantMime: MimePDF,
		},
		{
			name:     "docx",
			file:     File{Name: "cv.docx", MimeType: MimeDocx, Size: 1024},
			wantMime: MimeDocx,
		},
		{
			name:     "doc",
			file:     File{Name: "cv.doc", MimeType: MimeDoc, Size: 1024},
			wantMime: MimeDoc,
		},
		{
			name:     "刚好 5 MiB",
			file:     File{Name: "cv.pdf", MimeType: MimePDF, Size: MaxSize},
			wantMime: MimePDF,
		},
		{
			name:    "超过 5 MiB 一个字节",
			file:    File{Name: "cv.pdf", MimeType: MimePDF, Size: MaxSize + 1},
			wantErr: ErrTooLarge,
		},
		{
			name:    "png",
			file:    File{Name: "cv.png", MimeType: "image/png", Size: 1024},
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "类型优先于大小",
			file:    File{Name: "cv.png", MimeType: "image/png", Size: 6 << 20},
			wantErr: ErrUnsupportedType,
		},
		{
			name:     "没有声明类型_按内容识别",
			file:     NewFile("cv", "", pdf),
			wantMime: MimePDF,
		},
		{
			name:     "octet-stream_按内容识别",
			file:     NewFile("cv.bin", "application/octet-stream", pdf),
			wantMime: MimePDF,
		},
		{
			name:    "按内容识别出文本",
			file:    NewFile("cv.txt", "", []byte("just some plain text")),
			wantErr: ErrUnsupportedType,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			art, err := Validate(tc.file)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				assert.ErrorIs(t, err, bizerr.ErrValidation)
				return
			}
			assert.Equal(t, tc.wantMime, art.MimeType())
			assert.Equal(t, tc.file.Name, art.FileName())
			assert.Equal(t, tc.file.Size, art.Size())
		})
	}
}

func TestArtifact_Immutable(t *testing.T) {
	content := []byte("%PDF-1.7 body")
	art, err := Validate(NewFile("cv.pdf", MimePDF, content))
	require.NoError(t, err)
	content[0] = 'X'
	got := art.Content()
	assert.True(t, bytes.HasPrefix(got, []byte("%PDF")))
	got[0] = 'Y'
	assert.True(t, bytes.HasPrefix(art.Content(), []byte("%PDF")))
}
