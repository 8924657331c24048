package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/kaitoh/sns-api/internal/constants"
	"github.com/kaitoh/sns-api/internal/dto"
	"github.com/kaitoh/sns-api/internal/middleware"
	"github.com/kaitoh/sns-api/internal/models"
	"github.com/kaitoh/sns-api/internal/repository"
	"github.com/kaitoh/sns-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer assembles the full router the way cmd/server does, with a
// cookie session store instead of redis.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Post{}, &models.Comment{}))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	authHandler := NewAuthHandler(services.NewAuthService(userRepo))
	profileHandler := NewProfileHandler(services.NewProfileService(repository.NewProfileRepository(db)), t.TempDir())
	postHandler := NewPostHandler(services.NewPostService(postRepo, userRepo), t.TempDir())
	commentHandler := NewCommentHandler(services.NewCommentService(repository.NewCommentRepository(db), postRepo))

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/myprofile", profileHandler.ListMyProfiles)
		authed.POST("/profile", profileHandler.CreateProfile)
		authed.POST("/post", postHandler.CreatePost)
		authed.GET("/post/:id", postHandler.GetPost)
		authed.POST("/comment", commentHandler.CreateComment)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterProfilePostCommentScenario(t *testing.T) {
	r := newTestServer(t)

	// Register.
	w := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"email":    "a@x.com",
		"password": "pw1",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	// Registering the same email again fails with a conflict.
	w = doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"email":    "a@x.com",
		"password": "pw2",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// Everything below registration requires a session.
	w = doJSON(t, r, http.MethodPost, "/profile", map[string]string{"nickname": "nick"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"email":    "a@x.com",
		"password": "pw1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// No profile yet: an empty list, not an error.
	w = doJSON(t, r, http.MethodGet, "/myprofile", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var profiles []dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	require.Empty(t, profiles)

	// Create a profile: the owner is the caller.
	w = doJSON(t, r, http.MethodPost, "/profile", map[string]string{"nickname": "nick"}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var profile dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	require.Equal(t, user.ID, profile.UserID)

	// Create a post: the author is the caller, liked defaults to empty.
	w = doJSON(t, r, http.MethodPost, "/post", map[string]string{"title": "hi"}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var post dto.PostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	require.Equal(t, user.ID, post.UserID)
	require.Empty(t, post.Liked)

	// Comment on the post: the commenter is the caller, text verbatim.
	w = doJSON(t, r, http.MethodPost, "/comment", map[string]interface{}{
		"text": "nice",
		"post": post.ID,
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var comment dto.CommentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
	require.Equal(t, user.ID, comment.UserID)
	require.Equal(t, post.ID, comment.PostID)
	require.Equal(t, "nice", comment.Text)
}
