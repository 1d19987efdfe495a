package notify

import (
	"context"
	"strconv"

	applog "github.com/darkkaiser/line-notifier/pkg/log"
	"github.com/go-resty/resty/v2"
)

const component = "notify"

// 요청 필드 이름
const (
	fieldMessage          = "message"
	fieldImageThumbnail   = "imageThumbnail"
	fieldImageFullsize    = "imageFullsize"
	fieldImageFile        = "imageFile"
	fieldStickerPackageID = "stickerPackageId"
	fieldStickerID        = "stickerId"
)

// newHTTPClient 기본 resty 클라이언트를 생성합니다.
//
// 에러 응답 객체(SetError)를 등록하지 않으므로 4xx/5xx 응답도 에러 없이 그대로 반환된다.
func newHTTPClient() *resty.Client {
	return resty.New().SetLogger(applog.WithComponent("resty"))
}

// Send 설정된 값으로 알림을 전송합니다.
//
// 토큰 또는 메시지가 비어 있으면 네트워크 요청 없이 설정 오류를 반환합니다.
// 원격 API가 200 이외의 상태 코드를 반환해도 에러가 아니며, Result.OK가 false가 됩니다.
// 네트워크 오류는 HTTP 클라이언트가 반환한 에러를 그대로 반환하며, 이 경우 마지막 전송 결과는 갱신되지 않습니다.
func (r *Request) Send(ctx context.Context) (*Result, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	logger := applog.WithComponentAndFields(component, applog.Fields{
		"endpoint":  r.endpoint,
		"token":     applog.MaskSensitiveData(r.token),
		"multipart": r.IsMultipart(),
	})

	req := r.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+r.token)
	if r.userAgent != "" {
		req.SetHeader("User-Agent", r.userAgent)
	}

	if r.IsMultipart() {
		rc, err := r.openFile(r.imageFile)
		if err != nil {
			logger.WithError(err).Error("업로드할 이미지 파일 열기 실패")
			return nil, newErrImageFileOpen(err, r.imageFile)
		}
		defer func() {
			if err := rc.Close(); err != nil {
				logger.WithError(err).Warn("업로드 이미지 파일 닫기 실패")
			}
		}()

		if r.imageThumbnail != "" || r.imageFullsize != "" {
			logger.WithFields(applog.Fields{
				"image_thumbnail": r.imageThumbnail,
				"image_fullsize":  r.imageFullsize,
			}).Warn("이미지 파일 업로드 시에는 이미지 URL(imageThumbnail, imageFullsize)이 전송되지 않습니다")
		}

		file, err := newUploadFile(r.imageFile, rc)
		if err != nil {
			logger.WithError(err).Error("업로드할 이미지 파일 읽기 실패")
			return nil, newErrImageFileOpen(err, r.imageFile)
		}
		req.SetMultipartFormData(r.multipartFields()).
			SetMultipartField(fieldImageFile, file.name, file.contentType, file.reader)

		logger.WithField("content_type", file.contentType).Debug("multipart 요청 구성 완료")
	} else {
		fields := r.formFields()
		req.SetFormData(fields)

		logger.WithField("fields", fieldNames(fields)).Debug("form 요청 구성 완료")
	}

	resp, err := req.Post(r.endpoint)
	if err != nil {
		logger.WithError(err).Error("알림 전송 요청 실패")
		return nil, err
	}

	result := newResult(resp.StatusCode(), resp.Header(), resp.Body())
	r.lastResult = result

	entry := logger.WithField("status_code", result.StatusCode)
	if result.Response != nil {
		entry = entry.WithField("message", result.Response.Message)
	}
	if result.OK {
		entry.Info("알림 전송 완료")
	} else {
		entry.Warn("원격 API가 알림 전송 요청을 거절했습니다")
	}
	entry.WithField("body", string(resp.Body())).Trace("응답 본문")

	return result, nil
}

// validate 전송 직전에 필수 값을 검증합니다. Send 호출마다 매번 수행됩니다.
func (r *Request) validate() error {
	if r.token == "" {
		return ErrTokenRequired
	}
	if r.message == "" {
		return ErrMessageRequired
	}
	return nil
}

// formFields form-urlencoded 요청 본문을 구성합니다. 값이 비어 있는 필드는 제외됩니다.
func (r *Request) formFields() map[string]string {
	fields := make(map[string]string, 5)
	putString(fields, fieldMessage, r.message)
	putString(fields, fieldImageThumbnail, r.imageThumbnail)
	putString(fields, fieldImageFullsize, r.imageFullsize)
	putInt(fields, fieldStickerPackageID, r.stickerPackageID)
	putInt(fields, fieldStickerID, r.stickerID)
	return fields
}

// multipartFields multipart 요청의 파일 이외 필드를 구성합니다.
// 이미지 URL(imageThumbnail, imageFullsize)은 포함하지 않습니다.
func (r *Request) multipartFields() map[string]string {
	fields := make(map[string]string, 3)
	putString(fields, fieldMessage, r.message)
	putInt(fields, fieldStickerPackageID, r.stickerPackageID)
	putInt(fields, fieldStickerID, r.stickerID)
	return fields
}

func putString(fields map[string]string, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

// putInt 값이 nil이거나 0이면 필드를 제외한다. (0은 미설정과 동일하게 취급)
func putInt(fields map[string]string, key string, value *int) {
	if value != nil && *value != 0 {
		fields[key] = strconv.Itoa(*value)
	}
}

func fieldNames(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for _, key := range []string{fieldMessage, fieldImageThumbnail, fieldImageFullsize, fieldStickerPackageID, fieldStickerID} {
		if _, ok := fields[key]; ok {
			names = append(names, key)
		}
	}
	return names
}
