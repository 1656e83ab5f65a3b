package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "keysentry/api/v1"
	"keysentry/internal/handler"
	"keysentry/pkg/log"
	mock_service "keysentry/test/mocks/service"

	"github.com/gavv/httpexpect/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
)

func newUserRouter(userService *mock_service.MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := log.NewLog(viper.New())
	userHandler := handler.NewUserHandler(handler.NewHandler(logger), userService)

	r := gin.New()
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	return r
}

func TestUserHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userService := mock_service.NewMockUserService(ctrl)
	userService.EXPECT().Register(gomock.Any(), &v1.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "123456",
	}).Return(nil)

	srv := httptest.NewServer(newUserRouter(userService))
	defer srv.Close()

	e := httpexpect.Default(t, srv.URL)
	obj := e.POST("/register").
		WithJSON(map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "123456",
		}).
		Expect().
		Status(http.StatusOK).
		JSON().Object()
	obj.Value("code").Number().IsEqual(0)
}

func TestUserHandler_Register_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userService := mock_service.NewMockUserService(ctrl)

	srv := httptest.NewServer(newUserRouter(userService))
	defer srv.Close()

	e := httpexpect.Default(t, srv.URL)
	e.POST("/register").
		WithJSON(map[string]string{"username": "alice"}).
		Expect().
		Status(http.StatusBadRequest)
}

func TestUserHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userService := mock_service.NewMockUserService(ctrl)
	userService.EXPECT().Login(gomock.Any(), &v1.LoginRequest{
		Account:  "alice",
		Password: "123456",
	}).Return("token-abc", nil)

	srv := httptest.NewServer(newUserRouter(userService))
	defer srv.Close()

	e := httpexpect.Default(t, srv.URL)
	obj := e.POST("/login").
		WithJSON(map[string]string{
			"account":  "alice",
			"password": "123456",
		}).
		Expect().
		Status(http.StatusOK).
		JSON().Object()
	obj.Value("data").Object().Value("accessToken").String().IsEqual("token-abc")
}
