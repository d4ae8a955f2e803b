package api_common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestHttpStatusError_Error(t *testing.T) {
	tests := []struct {
		name          string
		err           *HttpStatusError
		expectedError string
	}{
		{"onlyInternalErr", &HttpStatusError{InternalErr: errors.New("internal error")}, "internal error"},
		{"onlyResponseMsg", &HttpStatusError{ResponseMsg: "response message"}, "response message"},
		{"onlyStatus", &HttpStatusError{Status: http.StatusNotFound}, "HTTP 404: Not Found"},
		{"noDetails", &HttpStatusError{}, "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expectedError, tt.err.Error())
		})
	}
}

func TestHttpStatusError_ResponseMsgOrDefault(t *testing.T) {
	require.Equal(t, "response message", (&HttpStatusError{ResponseMsg: "response message"}).ResponseMsgOrDefault())
	require.Equal(t, "Unauthorized", (&HttpStatusError{Status: http.StatusUnauthorized}).ResponseMsgOrDefault())
	require.Equal(t, "Unknown Status", (&HttpStatusError{Status: 799}).ResponseMsgOrDefault())
}

func TestHttpStatusError_WriteGinResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("normal mode", func(t *testing.T) {
		rec := httptest.NewRecorder()
		gctx, _ := gin.CreateTestContext(rec)

		NewHttpStatusErrorBuilder().
			WithStatusBadRequest().
			WithCode("missing_required_filter").
			WithResponseMsg("container type is required").
			WithInternalErr(errors.New("secret detail")).
			BuildStatusError().
			WriteGinResponse(NewMockDebuggable(false), gctx)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Empty(t, rec.Header().Get(DebugHeader))

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "container type is required", resp.Error)
		require.Equal(t, "missing_required_filter", resp.Code)
		require.Empty(t, resp.StackTrace)
	})

	t.Run("debug mode", func(t *testing.T) {
		rec := httptest.NewRecorder()
		gctx, _ := gin.CreateTestContext(rec)

		NewHttpStatusErrorBuilder().
			WithStatusForbidden().
			WithInternalErr(errors.New("internal error text")).
			BuildStatusError().
			WriteGinResponse(NewMockDebuggable(true), gctx)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, "internal error text", rec.Header().Get(DebugHeader))

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Forbidden", resp.Error)
		require.Contains(t, resp.StackTrace, "internal error text")
	})
}

func TestHttpStatusErrorBuilder(t *testing.T) {
	t.Run("default status only overrides 500", func(t *testing.T) {
		err := NewHttpStatusErrorBuilder().
			WithStatus(http.StatusConflict).
			DefaultStatus(http.StatusNotFound).
			BuildStatusError()
		require.Equal(t, http.StatusConflict, err.Status)
	})

	t.Run("wrapped status error keeps status and code", func(t *testing.T) {
		inner := NewHttpStatusErrorBuilder().
			WithStatusUnauthorized().
			WithCode("unauthorized").
			WithResponseMsg("sign in").
			Build()

		err := AsHttpStatusError(errors.Wrap(inner, "while loading"))
		require.Equal(t, http.StatusUnauthorized, err.Status)
		require.Equal(t, "unauthorized", err.Code)
		require.Equal(t, "sign in", err.ResponseMsg)
		require.True(t, HttpStatusErrorIsStatusCode(err, http.StatusUnauthorized))
		require.True(t, HttpStatusErrorContains(err, "while loading"))
	})

	t.Run("wrapped internal error", func(t *testing.T) {
		err := NewHttpStatusErrorBuilder().
			WithWrappedInternalErr(errors.New("redis down"), "failed to save login state").
			Build()
		require.True(t, HttpStatusErrorContains(err, "failed to save login state: redis down"))
		require.True(t, HttpStatusErrorIsStatusCode(err, http.StatusInternalServerError))
	})
}
