package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
}

func TestNewDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "STORE_PATH", "STORE_KEY", "REQUEST_TIMEOUT", "REDIS_DB", "ARCHIVE_S3_PATH_STYLE"} {
		t.Setenv(k, "")
	}
	conf := New()

	assert.Equal(t, DefaultPort, conf.Port)
	assert.Equal(t, DefaultStoreDriver, conf.StoreDriver)
	assert.Equal(t, DefaultStorePath, conf.StorePath)
	assert.Equal(t, DefaultStoreKey, conf.StoreKey)
	assert.Equal(t, DefaultRequestTimeout, conf.RequestTimeout)
	assert.Equal(t, 0, conf.RedisDB)
	assert.False(t, conf.ArchiveS3PathStyle)
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("STORE_KEY", "archive")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ARCHIVE_S3_PATH_STYLE", "true")
	conf := New()

	assert.Equal(t, "9090", conf.Port)
	assert.Equal(t, "sqlite", conf.StoreDriver)
	assert.Equal(t, "archive", conf.StoreKey)
	assert.Equal(t, 5*time.Second, conf.RequestTimeout)
	assert.Equal(t, 3, conf.RedisDB)
	assert.True(t, conf.ArchiveS3PathStyle)
}

func TestNewInvalidValuesFallBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("REDIS_DB", "two")
	conf := New()

	assert.Equal(t, DefaultRequestTimeout, conf.RequestTimeout)
	assert.Equal(t, 0, conf.RedisDB)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"Response":{"Message":"error it borked","Error":"bad request"}}`, rr.Body.String())
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
