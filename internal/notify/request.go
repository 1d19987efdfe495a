// Package notify LINE Notify API로 알림을 전송하는 클라이언트를 제공합니다.
//
// Request에 메시지, 이미지, 스티커 정보를 설정한 뒤 Send를 호출하면
// 설정된 값에 따라 form-urlencoded 또는 multipart/form-data 형식의 POST 요청을 전송합니다.
//
//	req := notify.New(token).
//	    SetMessage("배포가 완료되었습니다").
//	    SetSticker(notify.Int(446), notify.Int(1988))
//
//	result, err := req.Send(ctx)
//	if err != nil {
//	    // 설정 오류(IsConfigurationError) 또는 네트워크 오류
//	}
//	if !result.OK {
//	    // 원격 API가 요청을 거절함 (result.Response.Message 확인)
//	}
//
// 하나의 Request 인스턴스를 여러 고루틴에서 동시에 Send 하는 것은 지원하지 않습니다.
package notify

import (
	"github.com/darkkaiser/line-notifier/internal/pkg/version"
	"github.com/go-resty/resty/v2"
)

// DefaultEndpoint LINE Notify 알림 전송 API 주소
const DefaultEndpoint = "https://notify-api.line.me/api/notify"

// Request 전송할 알림의 구성 정보를 담는 가변 객체입니다.
//
// 모든 필드는 선택 사항이며, 토큰과 메시지는 Send 호출 시점에 검증됩니다.
// Setter는 체이닝을 위해 자기 자신을 반환합니다.
type Request struct {
	token   string
	message string

	// 원격 이미지 URL (JPEG, 최대 1024×1024px 제한은 원격 API가 검증한다)
	imageThumbnail string
	imageFullsize  string

	// 업로드할 로컬 이미지 파일 경로. 값이 있으면 multipart 요청으로 전송된다.
	imageFile string

	stickerPackageID *int
	stickerID        *int

	// 마지막 전송 결과 (last-write-wins)
	lastResult *Result

	endpoint  string
	userAgent string
	client    *resty.Client
	openFile  FileOpener
}

// New 새로운 알림 요청을 생성합니다. token은 빈 문자열일 수 있으며, 이후 SetToken으로 설정할 수 있습니다.
func New(token string, opts ...Option) *Request {
	r := &Request{
		token:     token,
		endpoint:  DefaultEndpoint,
		userAgent: "line-notifier/" + version.Version(),
		openFile:  openLocalFile,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.client == nil {
		r.client = newHTTPClient()
	}

	return r
}

// Int 정수 값의 포인터를 반환합니다. 스티커 ID 설정 시 사용합니다.
func Int(v int) *int {
	return &v
}

// SetToken 액세스 토큰을 설정합니다.
func (r *Request) SetToken(token string) *Request {
	r.token = token
	return r
}

// Token 액세스 토큰을 반환합니다.
func (r *Request) Token() string {
	return r.token
}

// SetMessage 전송할 메시지를 설정합니다.
func (r *Request) SetMessage(message string) *Request {
	r.message = message
	return r
}

// Message 전송할 메시지를 반환합니다.
func (r *Request) Message() string {
	return r.message
}

// SetImageThumbnail 미리보기 이미지 URL을 설정합니다. multipart 요청에는 포함되지 않습니다.
func (r *Request) SetImageThumbnail(url string) *Request {
	r.imageThumbnail = url
	return r
}

// ImageThumbnail 미리보기 이미지 URL을 반환합니다.
func (r *Request) ImageThumbnail() string {
	return r.imageThumbnail
}

// SetImageFullsize 원본 이미지 URL을 설정합니다. multipart 요청에는 포함되지 않습니다.
func (r *Request) SetImageFullsize(url string) *Request {
	r.imageFullsize = url
	return r
}

// ImageFullsize 원본 이미지 URL을 반환합니다.
func (r *Request) ImageFullsize() string {
	return r.imageFullsize
}

// SetImageFile 업로드할 이미지 파일의 경로(또는 file:// URI)를 설정합니다.
func (r *Request) SetImageFile(path string) *Request {
	r.imageFile = path
	return r
}

// ImageFile 업로드할 이미지 파일의 경로를 반환합니다.
func (r *Request) ImageFile() string {
	return r.imageFile
}

// SetStickerPackageID 스티커 패키지 ID를 설정합니다. nil이면 설정을 해제합니다.
func (r *Request) SetStickerPackageID(id *int) *Request {
	r.stickerPackageID = copyInt(id)
	return r
}

// StickerPackageID 스티커 패키지 ID를 반환합니다.
func (r *Request) StickerPackageID() *int {
	return copyInt(r.stickerPackageID)
}

// SetStickerID 스티커 ID를 설정합니다. nil이면 설정을 해제합니다.
func (r *Request) SetStickerID(id *int) *Request {
	r.stickerID = copyInt(id)
	return r
}

// StickerID 스티커 ID를 반환합니다.
func (r *Request) StickerID() *int {
	return copyInt(r.stickerID)
}

// SetSticker 스티커 패키지 ID와 스티커 ID를 함께 설정합니다. 두 값은 각각 nil일 수 있습니다.
func (r *Request) SetSticker(packageID, id *int) *Request {
	return r.SetStickerPackageID(packageID).SetStickerID(id)
}

// IsMultipart 업로드할 이미지 파일이 설정되어 multipart 요청으로 전송되는지 여부를 반환합니다.
func (r *Request) IsMultipart() bool {
	return r.imageFile != ""
}

// Response 마지막 전송에서 수신한 응답 본문을 반환합니다.
// 전송한 적이 없거나 응답 본문이 JSON이 아니면 nil을 반환합니다.
func (r *Request) Response() *Response {
	if r.lastResult == nil {
		return nil
	}
	return r.lastResult.Response
}

// LastResult 마지막 전송 결과를 반환합니다. 전송한 적이 없으면 nil을 반환합니다.
func (r *Request) LastResult() *Result {
	return r.lastResult
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
