package notify

import (
	"github.com/go-resty/resty/v2"
)

// Option Request 생성 시 기본 동작을 변경하는 함수입니다.
type Option func(*Request)

// WithEndpoint 알림 API 주소를 변경합니다. (테스트 서버, 프록시 등)
func WithEndpoint(endpoint string) Option {
	return func(r *Request) {
		if endpoint != "" {
			r.endpoint = endpoint
		}
	}
}

// WithHTTPClient 요청에 사용할 resty 클라이언트를 지정합니다.
func WithHTTPClient(client *resty.Client) Option {
	return func(r *Request) {
		if client != nil {
			r.client = client
		}
	}
}

// WithFileOpener 업로드 이미지 파일을 여는 함수를 지정합니다.
func WithFileOpener(opener FileOpener) Option {
	return func(r *Request) {
		if opener != nil {
			r.openFile = opener
		}
	}
}

// WithUserAgent User-Agent 헤더 값을 지정합니다.
func WithUserAgent(userAgent string) Option {
	return func(r *Request) {
		r.userAgent = userAgent
	}
}
