package notify

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// 응답 헤더로 전달되는 API 호출 제한 정보
const (
	headerRateLimit               = "X-RateLimit-Limit"
	headerRateLimitRemaining      = "X-RateLimit-Remaining"
	headerRateLimitImageLimit     = "X-RateLimit-ImageLimit"
	headerRateLimitImageRemaining = "X-RateLimit-ImageRemaining"
	headerRateLimitReset          = "X-RateLimit-Reset"
)

// Result 한 번의 전송 결과입니다.
type Result struct {
	// StatusCode 원격 API가 반환한 HTTP 상태 코드
	StatusCode int

	// OK 상태 코드가 200인 경우에만 true
	OK bool

	// Response 응답 본문. 본문이 JSON이 아니면 nil
	Response *Response

	// RateLimit 응답 헤더의 호출 제한 정보
	RateLimit RateLimit
}

// Response JSON으로 디코딩된 응답 본문입니다.
type Response struct {
	// Status 본문의 "status" 값
	Status int

	// Message 본문의 "message" 값
	Message string

	// Raw 응답 본문 원문
	Raw []byte
}

// Get 응답 본문에서 gjson 경로 문법으로 값을 조회합니다.
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Raw, path)
}

// RateLimit 원격 API의 시간당 호출 제한 정보입니다.
// 헤더가 없거나 형식이 올바르지 않으면 Known이 false 입니다.
type RateLimit struct {
	Known bool

	Limit          int
	Remaining      int
	ImageLimit     int
	ImageRemaining int
	Reset          time.Time
}

func newResult(statusCode int, header http.Header, body []byte) *Result {
	return &Result{
		StatusCode: statusCode,
		OK:         statusCode == http.StatusOK,
		Response:   decodeResponse(body),
		RateLimit:  parseRateLimit(header),
	}
}

func decodeResponse(body []byte) *Response {
	if !gjson.ValidBytes(body) {
		return nil
	}

	root := gjson.ParseBytes(body)

	raw := make([]byte, len(body))
	copy(raw, body)

	return &Response{
		Status:  int(root.Get("status").Int()),
		Message: root.Get("message").String(),
		Raw:     raw,
	}
}

func parseRateLimit(header http.Header) RateLimit {
	var rl RateLimit
	if header == nil || header.Get(headerRateLimit) == "" {
		return rl
	}

	var err error
	if rl.Limit, err = strconv.Atoi(header.Get(headerRateLimit)); err != nil {
		return RateLimit{}
	}
	if rl.Remaining, err = strconv.Atoi(header.Get(headerRateLimitRemaining)); err != nil {
		return RateLimit{}
	}

	// 이미지 관련 값과 초기화 시각은 선택 항목이다.
	rl.ImageLimit, _ = strconv.Atoi(header.Get(headerRateLimitImageLimit))
	rl.ImageRemaining, _ = strconv.Atoi(header.Get(headerRateLimitImageRemaining))
	if reset, err := strconv.ParseInt(header.Get(headerRateLimitReset), 10, 64); err == nil {
		rl.Reset = time.Unix(reset, 0)
	}

	rl.Known = true

	return rl
}
