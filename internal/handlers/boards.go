package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kanbanhq/kanban-api/internal/models"
	"github.com/kanbanhq/kanban-api/internal/services"
)

func (h *Handler) CreateBoard(c *fiber.Ctx) error {
	var req models.CreateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	board, err := h.boards.Create(req.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create board",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(board)
}

func (h *Handler) GetBoards(c *fiber.Ctx) error {
	offset, limit := h.pagination(c, 100)

	boards, err := h.boards.List(c.Query("q"), offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch boards",
		})
	}

	return c.JSON(boards)
}

func (h *Handler) GetBoard(c *fiber.Ctx) error {
	boardID, err := c.ParamsInt("id")
	if err != nil || boardID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}

	board, err := h.boards.Get(uint(boardID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Board not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch board",
		})
	}

	return c.JSON(board)
}

func (h *Handler) UpdateBoard(c *fiber.Ctx) error {
	boardID, err := c.ParamsInt("id")
	if err != nil || boardID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}

	var req models.UpdateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Omitted name and empty name are both no-ops.
	newName := ""
	if req.Name != nil {
		newName = *req.Name
	}

	board, err := h.boards.Update(uint(boardID), newName)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Board not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update board",
		})
	}

	return c.JSON(board)
}

func (h *Handler) DeleteBoard(c *fiber.Ctx) error {
	boardID, err := c.ParamsInt("id")
	if err != nil || boardID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}

	if err := h.boards.Delete(uint(boardID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Board not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete board",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoardTasks lists the tasks belonging to a board.
func (h *Handler) GetBoardTasks(c *fiber.Ctx) error {
	boardID, err := c.ParamsInt("id")
	if err != nil || boardID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}

	board, err := h.boards.GetWithTasks(uint(boardID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Board not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch board",
		})
	}

	tasks := board.Tasks
	if tasks == nil {
		tasks = []models.Task{}
	}
	return c.JSON(tasks)
}

// AddBoardParticipant links a user to a board.
func (h *Handler) AddBoardParticipant(c *fiber.Ctx) error {
	boardID, err := c.ParamsInt("id")
	if err != nil || boardID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}

	var req models.AddParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if _, err := h.boards.Get(uint(boardID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Board not found",
		})
	}
	if _, err := h.users.Get(req.UserID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if err := h.boards.AddParticipant(uint(boardID), req.UserID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add participant",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.BoardParticipant{
		BoardID: uint(boardID),
		UserID:  req.UserID,
	})
}

// GetBoardParticipants lists the users linked to a board.
func (h *Handler) GetBoardParticipants(c *fiber.Ctx) error {
	boardID, err := c.ParamsInt("id")
	if err != nil || boardID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}

	users, err := h.boards.ListParticipants(uint(boardID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Board not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch participants",
		})
	}

	return c.JSON(users)
}

// RemoveBoardParticipant unlinks a user from a board.
func (h *Handler) RemoveBoardParticipant(c *fiber.Ctx) error {
	boardID, err := c.ParamsInt("id")
	if err != nil || boardID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid board ID",
		})
	}
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if _, err := h.boards.Get(uint(boardID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Board not found",
		})
	}

	if err := h.boards.RemoveParticipant(uint(boardID), uint(userID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Participant not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove participant",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
