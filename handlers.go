package blogpost

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createPostRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Categories []string `json:"categories"`
}

type postListResponse struct {
	Posts      []PostView `json:"posts"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	TotalPosts int        `json:"total_posts"`
}

// handleListPosts serves one page of the newest-first post listing.
func (a *App) handleListPosts(c echo.Context) error {
	page := pageParam(c)

	total, err := a.Store.CountPosts()
	if err != nil {
		return err
	}
	pages, err := TotalPages(total, a.Config.PageSize)
	if err != nil {
		return err
	}
	if pages > 0 && page > pages {
		return echo.NewHTTPError(http.StatusBadRequest, "page out of range")
	}
	offset, err := PageOffset(page, a.Config.PageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	posts, err := a.Store.ListPosts(offset, a.Config.PageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postListResponse{
		Posts:      posts,
		Page:       page,
		TotalPages: pages,
		TotalPosts: total,
	})
}

// handleSearchPosts serves a paginated keyword search within one category.
func (a *App) handleSearchPosts(c echo.Context) error {
	categoryID, err := strconv.ParseInt(c.QueryParam("category"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "category query parameter is required")
	}
	keyword := c.QueryParam("q")
	page := pageParam(c)

	offset, err := PageOffset(page, a.Config.PageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	posts, err := a.Store.SearchPosts(categoryID, keyword, offset, a.Config.PageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

func (a *App) handleListCategories(c echo.Context) error {
	names, err := a.categories.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, names)
}

func (a *App) handlePostsByCategory(c echo.Context) error {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	posts, err := a.Store.ListPostsByCategory(categoryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// handleTrends serves the posts-per-day series consumed by the charting
// client.
func (a *App) handleTrends(c echo.Context) error {
	trends, err := a.Store.PostTrendsByDate()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trends)
}

// handleCreatePost creates a post for the logged-in user.
func (a *App) handleCreatePost(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	postID, err := a.Store.CreatePost(userID, req.Title, req.Content, req.Categories)
	if errors.Is(err, ErrTitleRequired) || errors.Is(err, ErrContentRequired) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": postID})
}

func (a *App) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := a.Store.Register(req.Username, req.Password)
	if errors.Is(err, ErrDuplicateUsername) {
		return echo.NewHTTPError(http.StatusConflict, "username already taken")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"username": req.Username})
}

func (a *App) handleLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ok, err := a.Store.Authenticate(req.Username, req.Password)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}
	userID, err := a.Store.UserID(req.Username)
	if err != nil {
		return err
	}
	if err := setUserSession(c, userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"username": req.Username})
}

func handleLogout(c echo.Context) error {
	if err := clearUserSession(c); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pageParam reads the 1-indexed page query parameter, defaulting to 1.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
