// Package handlers maps HTTP requests onto the listing and signing logic.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jnises/bitte/internal/resolver"
	"github.com/jnises/bitte/internal/services"
	"github.com/labstack/echo/v4"
)

type BrowseHandler struct {
	lister    *services.Lister
	delimiter string
}

func NewBrowseHandler(lister *services.Lister, delimiter string) *BrowseHandler {
	return &BrowseHandler{lister: lister, delimiter: delimiter}
}

// Browse serves every GET under the mount point. A path that is empty or
// ends with the delimiter is a directory listing; anything else redirects to
// a presigned URL for the object so the bytes never pass through here.
func (h *BrowseHandler) Browse(c echo.Context) error {
	target, err := resolver.Resolve(c.Request().URL.EscapedPath(), h.delimiter)
	if err != nil {
		switch {
		case errors.Is(err, resolver.ErrTraversal):
			return echo.NewHTTPError(http.StatusBadRequest, "invalid path")
		case errors.Is(err, resolver.ErrInvalidEncoding):
			return echo.NewHTTPError(http.StatusBadRequest, "bad path encoding")
		}
		return err
	}

	ctx := c.Request().Context()

	if !target.Dir {
		signed, _, err := h.lister.Presign(ctx, target.Key)
		if err != nil {
			return mapListError(err)
		}
		return c.Redirect(http.StatusTemporaryRedirect, signed.String())
	}

	listing, err := h.lister.List(ctx, target.Prefix())
	if err != nil {
		return mapListError(err)
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, listing)
	}

	parentLink := ""
	if parent, ok := ParentPrefix(listing.Prefix, h.delimiter); ok {
		parentLink = "/" + parent
	}

	return c.Render(http.StatusOK, "listing", map[string]interface{}{
		"Path":        "/" + listing.Prefix,
		"Parent":      parentLink,
		"Breadcrumbs": Breadcrumbs(listing.Prefix, h.delimiter),
		"Folders":     listing.Folders,
		"Objects":     listing.Objects,
	})
}

// mapListError translates listing failures into HTTP statuses. Clients get
// a terse message; the underlying cause only goes to the log.
func mapListError(err error) error {
	var unavailable *services.StoreUnavailableError
	switch {
	case errors.Is(err, services.ErrPrefixNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrTooManyPages):
		slog.Error("listing aborted", "err", err)
		return echo.NewHTTPError(http.StatusBadGateway, "listing too large")
	case errors.As(err, &unavailable):
		slog.Error("object store unavailable", "err", unavailable.Err)
		return echo.NewHTTPError(http.StatusBadGateway, "object store unavailable")
	}
	return err
}

func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON)
}
