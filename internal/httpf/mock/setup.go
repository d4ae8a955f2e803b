package mock

import (
	"net/http"

	"github.com/golang/mock/gomock"
	genmock "gopkg.in/h2non/gentleman-mock.v2"
	"gopkg.in/h2non/gentleman.v2"
	"gopkg.in/h2non/gock.v1"
)

type cleanuper interface {
	Cleanup(func())
}

// NewFactoryWithMockingClient returns a factory whose clients are intercepted by gock. Register expectations with
// genmock.New(...) or gock.New(...).
func NewFactoryWithMockingClient(ctrl *gomock.Controller) *MockF {
	cli := gentleman.New()
	cli.Use(genmock.Plugin)

	httpClient := &http.Client{Transport: http.DefaultTransport}
	gock.InterceptClient(httpClient)

	if c, ok := ctrl.T.(cleanuper); ok {
		// Help protect against leaking mocks
		c.Cleanup(func() {
			gock.Off()
			gock.RestoreClient(httpClient)
		})
	}

	h := NewMockF(ctrl)

	h.
		EXPECT().
		ForRequestInfo(gomock.Any()).
		Return(h).
		AnyTimes()

	h.
		EXPECT().
		ForRequestType(gomock.Any()).
		Return(h).
		AnyTimes()

	h.
		EXPECT().
		ForResourceKind(gomock.Any()).
		Return(h).
		AnyTimes()

	h.
		EXPECT().
		New().
		Return(cli).
		AnyTimes()

	h.
		EXPECT().
		NewHttpClient().
		Return(httpClient).
		AnyTimes()

	return h
}
