package notify

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLength 업로드 파일의 MIME 타입 판별을 위해 미리 읽는 바이트 수
const sniffLength = 3072

// FileOpener 업로드할 이미지 파일을 여는 함수입니다.
// 반환된 ReadCloser는 요청이 끝나면 정확히 한 번 닫힙니다.
type FileOpener func(path string) (io.ReadCloser, error)

// openLocalFile 로컬 경로 또는 file:// URI 형식의 이미지 파일을 엽니다.
func openLocalFile(path string) (io.ReadCloser, error) {
	return os.Open(localPath(path))
}

func localPath(path string) string {
	if rest, ok := strings.CutPrefix(path, "file://"); ok {
		return rest
	}
	return path
}

// uploadFile 업로드할 파일의 내용과 부가 정보입니다.
type uploadFile struct {
	name        string
	contentType string
	reader      io.Reader
}

// newUploadFile 파일 앞부분을 확인해 Content-Type을 판별합니다.
// 파일을 읽을 수 없으면(디렉토리 등) 에러를 반환합니다.
//
// reader는 Read 메서드만 노출하므로 HTTP 클라이언트가 파일을 닫을 수 없다.
// 파일을 닫는 것은 항상 Send의 책임이다.
func newUploadFile(path string, rc io.ReadCloser) (*uploadFile, error) {
	br := bufio.NewReaderSize(rc, sniffLength)
	head, err := br.Peek(sniffLength)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}

	return &uploadFile{
		name:        filepath.Base(localPath(path)),
		contentType: mimetype.Detect(head).String(),
		reader:      struct{ io.Reader }{br},
	}, nil
}
