package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"ecom/internal/usecase"

	"github.com/labstack/echo/v4"
)

// レスポンスの action
const (
	actionGet    = "get"
	actionPost   = "post"
	actionPut    = "put"
	actionDelete = "delete"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected database error occurred."})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// skip（default 0）/ limit（default 100）
func pageFromQuery(c echo.Context) (usecase.PageInput, error) {
	in := usecase.PageInput{Skip: 0, Limit: usecase.DefaultLimit}

	if v := c.QueryParam("skip"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return in, usecase.NewHTTPError(http.StatusBadRequest, "invalid skip")
		}
		in.Skip = s
	}
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return in, usecase.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		in.Limit = l
	}
	return in, nil
}

// "2024-05-01" と RFC3339 のどちらも受ける日付
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// nilなら nil を返す
func (d *Date) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
