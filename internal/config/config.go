package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/darkkaiser/line-notifier/internal/notify"
	apperrors "github.com/darkkaiser/line-notifier/internal/pkg/errors"
	"github.com/darkkaiser/line-notifier/pkg/validation"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "line-notifier"

	// DefaultFilename 실행 인자로 설정 파일 경로가 주어지지 않았을 때 참조하는 기본 설정 파일명입니다.
	// 기본 설정 파일은 없어도 되며, 이 경우 기본값과 환경 변수만으로 구성됩니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사
	EnvPrefix = "LINE_NOTIFIER_"

	// DefaultLogMaxAge 로그 파일 보관 기간(일) 기본값
	DefaultLogMaxAge = 30
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug bool `json:"debug"`

	// Token LINE Notify 액세스 토큰. 명령행 인자로도 전달할 수 있으므로 설정 파일에서는 선택 항목이다.
	Token string `json:"token" validate:"line_token"`

	// Endpoint 알림 전송 API 주소
	Endpoint string `json:"endpoint" validate:"required,http_url"`

	HTTP         HTTPConfig         `json:"http"`
	Log          LogConfig          `json:"log"`
	Notification NotificationConfig `json:"notification"`
}

// HTTPConfig 원격 API 호출 설정
type HTTPConfig struct {
	// Timeout 전송 요청 1회의 제한 시간. 0이면 제한하지 않는다.
	Timeout time.Duration `json:"timeout" validate:"min=0"`
}

// LogConfig 로그 파일 설정
type LogConfig struct {
	// Dir 로그 파일을 기록할 디렉토리. 비어 있으면 콘솔에만 출력한다.
	Dir    string `json:"dir"`
	MaxAge int    `json:"max_age" validate:"min=0"`
}

// NotificationConfig 명령행 인자로 지정하지 않았을 때 사용하는 알림 기본값
type NotificationConfig struct {
	ImageThumbnail   string `json:"image_thumbnail" validate:"omitempty,http_url"`
	ImageFullsize    string `json:"image_fullsize" validate:"omitempty,http_url"`
	ImageFile        string `json:"image_file"`
	StickerPackageID int    `json:"sticker_package_id" validate:"omitempty,min=1"`
	StickerID        int    `json:"sticker_id" validate:"omitempty,min=1"`
}

// newDefaultConfig 설정 파일과 환경 변수가 적용되기 전의 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Endpoint: notify.DefaultEndpoint,
		Log: LogConfig{
			MaxAge: DefaultLogMaxAge,
		},
	}
}

// validate 설정 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := checkStruct(validate, c, "AppConfig"); err != nil {
		return err
	}

	// 기본 업로드 이미지 파일은 실행 시점마다 다시 지정하지 않으므로 미리 확인한다.
	if c.Notification.ImageFile != "" {
		if err := validation.ValidateFile(c.Notification.ImageFile); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "기본 업로드 이미지 파일(notification.image_file) 설정이 올바르지 않습니다")
		}
	}

	return nil
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다. 기본 설정 파일이 없으면 건너뜁니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, true)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다. 파일은 반드시 존재해야 합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, false)
}

func load(filename string, allowMissing bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && allowMissing:
			// 기본 설정 파일이 없으면 기본값과 환경 변수만 사용한다.
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrapf(err, apperrors.NotFound, "설정 파일을 찾을 수 없습니다: '%s'", filename)
		default:
			return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "설정 파일 로드 중 오류가 발생했습니다: '%s'", filename)
		}
	}

	// 3. 환경 변수 로드 (최우선 순위)
	// 예: LINE_NOTIFIER_HTTP__TIMEOUT -> http.timeout
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			ErrorUnused:      true, // 구조체에 없는 필드가 있으면 에러
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정('%s')의 유효성 검증에 실패했습니다", filename)
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 설정 키로 변환합니다.
// 접두사를 제거하고 소문자로 바꾼 뒤, 이중 언더스코어(__)를 계층 구분자(.)로 바꿉니다.
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
