package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/kanbanhq/kanban-api/internal/config"
	"github.com/kanbanhq/kanban-api/internal/services"
	"gorm.io/gorm"
)

// Handler owns the per-entity services and request validation. One instance
// is wired into the router at startup; the DB handle is injected, never a
// package-level global.
type Handler struct {
	cfg      *config.Config
	boards   *services.BoardService
	tasks    *services.TaskService
	users    *services.UserService
	validate *validator.Validate
}

func New(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{
		cfg:      cfg,
		boards:   services.NewBoardService(db),
		tasks:    services.NewTaskService(db),
		users:    services.NewUserService(db),
		validate: validator.New(),
	}
}

// pagination reads offset/limit query params, clamping limit to the
// configured maximum page size.
func (h *Handler) pagination(c *fiber.Ctx, defaultLimit int) (int, int) {
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > h.cfg.MaxPageSize {
		limit = h.cfg.MaxPageSize
	}
	return offset, limit
}

// queryUintPtr parses an optional numeric query param, nil when absent.
func queryUintPtr(c *fiber.Ctx, key string) (*uint, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil, err
	}
	id := uint(n)
	return &id, nil
}
