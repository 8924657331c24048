package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kaitoh/sns-api/internal/constants"
	"github.com/kaitoh/sns-api/internal/dto"
	"github.com/kaitoh/sns-api/internal/models"
	"github.com/kaitoh/sns-api/internal/repository"
	"github.com/kaitoh/sns-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// PostHandlerTestSuite defines the test suite for PostHandler
type PostHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *PostHandler
}

// SetupTest runs before each test
func (suite *PostHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
	)
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	postService := services.NewPostService(repository.NewPostRepository(suite.db), userRepo)
	suite.handler = NewPostHandler(postService, suite.T().TempDir())

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *PostHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *PostHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		IsActive:     true,
	}
	suite.db.Create(user)
	return user
}

func (suite *PostHandlerTestSuite) routerAs(userID uint64) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	})
	r.GET("/post", suite.handler.ListPosts)
	r.POST("/post", suite.handler.CreatePost)
	r.GET("/post/:id", suite.handler.GetPost)
	r.PUT("/post/:id", suite.handler.UpdatePost)
	r.PATCH("/post/:id", suite.handler.UpdatePost)
	r.DELETE("/post/:id", suite.handler.DeletePost)
	return r
}

func (suite *PostHandlerTestSuite) do(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *PostHandlerTestSuite) TestCreatePost_AuthorIsCaller() {
	caller := suite.createTestUser("caller@x.com")
	other := suite.createTestUser("other@x.com")
	r := suite.routerAs(caller.ID)

	// A client-supplied author must be ignored.
	w := suite.do(r, http.MethodPost, "/post", map[string]interface{}{
		"title":   "hi",
		"user_id": other.ID,
	})
	suite.Equal(http.StatusCreated, w.Code)

	var response dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(caller.ID, response.UserID)
	suite.Equal("hi", response.Title)
	suite.Empty(response.Liked)
}

func (suite *PostHandlerTestSuite) TestCreatePost_TitleRequired() {
	caller := suite.createTestUser("caller@x.com")
	r := suite.routerAs(caller.ID)

	w := suite.do(r, http.MethodPost, "/post", map[string]string{})
	suite.Equal(http.StatusBadRequest, w.Code)

	var response struct {
		Details map[string]string `json:"details"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Contains(response.Details, "title")
}

func (suite *PostHandlerTestSuite) TestCreatePost_UnknownLikedUser() {
	caller := suite.createTestUser("caller@x.com")
	r := suite.routerAs(caller.ID)

	w := suite.do(r, http.MethodPost, "/post", map[string]interface{}{
		"title": "hi",
		"liked": []uint64{999},
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	// Validation fails before anything is written.
	var count int64
	suite.db.Model(&models.Post{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *PostHandlerTestSuite) TestUpdatePost_ReplacesLikedSet() {
	caller := suite.createTestUser("caller@x.com")
	fan := suite.createTestUser("fan@x.com")
	r := suite.routerAs(caller.ID)

	w := suite.do(r, http.MethodPost, "/post", map[string]string{"title": "hi"})
	suite.Equal(http.StatusCreated, w.Code)

	var created dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	w = suite.do(r, http.MethodPatch, "/post/1", map[string]interface{}{
		"liked": []uint64{fan.ID},
	})
	suite.Equal(http.StatusOK, w.Code)

	var updated dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal([]uint64{fan.ID}, updated.Liked)
	suite.Equal("hi", updated.Title)

	// An empty array clears the set.
	w = suite.do(r, http.MethodPatch, "/post/1", map[string]interface{}{
		"liked": []uint64{},
	})
	suite.Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Empty(updated.Liked)
}

func (suite *PostHandlerTestSuite) TestUpdatePost_PutRequiresTitle() {
	caller := suite.createTestUser("caller@x.com")
	r := suite.routerAs(caller.ID)

	w := suite.do(r, http.MethodPost, "/post", map[string]string{"title": "hi"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(r, http.MethodPut, "/post/1", map[string]interface{}{
		"img": "posts/1hi.png",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PostHandlerTestSuite) TestGetPost_NotFound() {
	caller := suite.createTestUser("caller@x.com")
	r := suite.routerAs(caller.ID)

	w := suite.do(r, http.MethodGet, "/post/999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestListPosts() {
	caller := suite.createTestUser("caller@x.com")
	r := suite.routerAs(caller.ID)

	for _, title := range []string{"one", "two"} {
		w := suite.do(r, http.MethodPost, "/post", map[string]string{"title": title})
		suite.Equal(http.StatusCreated, w.Code)
	}

	w := suite.do(r, http.MethodGet, "/post", nil)
	suite.Equal(http.StatusOK, w.Code)

	var response dto.PostListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response.Posts, 2)
	suite.Equal(int64(2), response.Pagination.Total)
}

func (suite *PostHandlerTestSuite) TestDeletePost() {
	caller := suite.createTestUser("caller@x.com")
	r := suite.routerAs(caller.ID)

	w := suite.do(r, http.MethodPost, "/post", map[string]string{"title": "hi"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(r, http.MethodDelete, "/post/1", nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(r, http.MethodGet, "/post/1", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestPostHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}
