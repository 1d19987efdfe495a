package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		errType  ErrorType
		message  string
		expected string
	}{
		{"InvalidInput", InvalidInput, "메시지는 필수입니다", "[InvalidInput] 메시지는 필수입니다"},
		{"System", System, "파일 열기 실패", "[System] 파일 열기 실패"},
		{"Empty Message", Unknown, "", "[Unknown] "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.errType, tt.message)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())

			var appErr *AppError
			require.True(t, As(err, &appErr))
			assert.Equal(t, tt.errType, appErr.Type())
			assert.Equal(t, tt.message, appErr.Message())
			assert.NotEmpty(t, appErr.Stack())
			assert.Nil(t, appErr.Unwrap())
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "스티커 ID(%d)가 올바르지 않습니다", 7)
	assert.Equal(t, "[InvalidInput] 스티커 ID(7)가 올바르지 않습니다", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("Nil Error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, Internal, "무시"))
		assert.Nil(t, Wrapf(nil, Internal, "무시 %d", 1))
	})

	t.Run("Standard Error", func(t *testing.T) {
		err := Wrap(errStd, System, "래핑")
		assert.Equal(t, "[System] 래핑: standard error", err.Error())
		assert.True(t, errors.Is(err, errStd))
		assert.Equal(t, errStd, RootCause(err))
	})

	t.Run("Wrapf", func(t *testing.T) {
		err := Wrapf(errStd, System, "파일(%s) 열기 실패", "a.png")
		assert.Equal(t, "[System] 파일(a.png) 열기 실패: standard error", err.Error())
	})

	t.Run("PathError Preserved", func(t *testing.T) {
		pathErr := &fs.PathError{Op: "open", Path: "a.png", Err: fs.ErrNotExist}
		err := Wrap(pathErr, System, "이미지 파일 열기 실패")

		var target *fs.PathError
		assert.True(t, As(err, &target))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	base := New(InvalidInput, "토큰 누락")
	wrapped := Wrap(base, Internal, "전송 실패")
	external := fmt.Errorf("outer: %w", wrapped)

	assert.True(t, Is(base, InvalidInput))
	assert.True(t, Is(wrapped, InvalidInput))
	assert.True(t, Is(wrapped, Internal))
	assert.True(t, Is(external, InvalidInput))
	assert.False(t, Is(external, System))
	assert.False(t, Is(nil, InvalidInput))
	assert.False(t, Is(errStd, Unknown))
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unknown, UnderlyingType(nil))
	assert.Equal(t, Unknown, UnderlyingType(errStd))
	assert.Equal(t, NotFound, UnderlyingType(Wrap(New(NotFound, "없음"), Internal, "조회 실패")))
	assert.Equal(t, System, UnderlyingType(Wrap(errStd, System, "열기 실패")))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	assert.Nil(t, RootCause(nil))
	assert.Equal(t, errStd, RootCause(errStd))

	err := errStd
	for i := 0; i < 5; i++ {
		err = Wrap(err, Internal, "wrap")
	}
	assert.Equal(t, errStd, RootCause(err))
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	root := New(InvalidInput, "메시지 누락")
	wrapped := Wrap(root, InvalidInput, "전송 전 검증 실패")

	assert.Equal(t, wrapped.Error(), fmt.Sprintf("%s", wrapped))
	assert.Equal(t, wrapped.Error(), fmt.Sprintf("%v", wrapped))
	assert.Equal(t, fmt.Sprintf("%q", wrapped.Error()), fmt.Sprintf("%q", wrapped))

	detailed := fmt.Sprintf("%+v", wrapped)
	assert.Contains(t, detailed, "[InvalidInput] 전송 전 검증 실패")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[InvalidInput] 메시지 누락")
	assert.Contains(t, detailed, "Stack trace:")
	assert.Contains(t, detailed, "errors_test.go")
}

func TestCaptureStack_PointsToCaller(t *testing.T) {
	t.Parallel()

	err := New(Internal, "stack")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	require.NotEmpty(t, appErr.Stack())
	assert.LessOrEqual(t, len(appErr.Stack()), maxStackFrames)
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	assert.Contains(t, appErr.Stack()[0].Function, "TestCaptureStack_PointsToCaller")
}
