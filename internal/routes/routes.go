package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kanbanhq/kanban-api/internal/handlers"
)

func Setup(app *fiber.App, h *handlers.Handler) {
	boards := app.Group("/boards")
	boards.Post("/", h.CreateBoard)
	boards.Get("/", h.GetBoards)
	boards.Get("/:id", h.GetBoard)
	boards.Patch("/:id", h.UpdateBoard)
	boards.Delete("/:id", h.DeleteBoard)
	boards.Get("/:id/tasks", h.GetBoardTasks)

	// Board participants (many-to-many)
	boards.Post("/:id/participants", h.AddBoardParticipant)
	boards.Get("/:id/participants", h.GetBoardParticipants)
	boards.Delete("/:id/participants/:userId", h.RemoveBoardParticipant)

	tasks := app.Group("/tasks")
	tasks.Post("/", h.CreateTask)
	tasks.Get("/", h.GetTasks)
	tasks.Get("/:id", h.GetTask)
	tasks.Patch("/:id", h.UpdateTask)
	tasks.Delete("/:id", h.DeleteTask)
	tasks.Get("/:id/author", h.GetTaskAuthor)
	tasks.Get("/:id/board", h.GetTaskBoard)

	users := app.Group("/users")
	users.Post("/", h.CreateUser)
	users.Get("/", h.GetUsers)
	users.Get("/:id", h.GetUser)
	users.Patch("/:id", h.UpdateUser)
	users.Delete("/:id", h.DeleteUser)
	users.Get("/:id/tasks/authored", h.GetUserAuthoredTasks)
	users.Get("/:id/tasks/assigned", h.GetUserAssignedTasks)
	users.Get("/:id/tasks", h.GetUserTasks)
}
