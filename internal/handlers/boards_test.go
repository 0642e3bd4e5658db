package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kanbanhq/kanban-api/internal/models"
)

func TestBoards_CRUD(t *testing.T) {
	app := setupApp(t)

	board := createBoard(t, app, "Sprint 12")
	if board.ID == 0 || board.Name != "Sprint 12" {
		t.Fatalf("created board = %+v", board)
	}
	if board.CreatedAt.IsZero() || board.UpdatedAt.IsZero() {
		t.Error("timestamps missing from created board")
	}

	status, data := request(t, app, http.MethodGet, fmt.Sprintf("/boards/%d", board.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("GET /boards/%d status=%d body=%s", board.ID, status, data)
	}
	got := decode[models.Board](t, data)
	if got.ID != board.ID || got.Name != board.Name {
		t.Errorf("GET returned %+v, want %+v", got, board)
	}

	// rename
	status, data = request(t, app, http.MethodPatch, fmt.Sprintf("/boards/%d", board.ID), fiber.Map{"name": "Sprint 13"})
	if status != http.StatusOK {
		t.Fatalf("PATCH status=%d body=%s", status, data)
	}
	if got := decode[models.Board](t, data); got.Name != "Sprint 13" {
		t.Errorf("PATCH name = %q, want %q", got.Name, "Sprint 13")
	}

	// empty name and empty body are both no-ops
	status, data = request(t, app, http.MethodPatch, fmt.Sprintf("/boards/%d", board.ID), fiber.Map{"name": ""})
	if status != http.StatusOK {
		t.Fatalf("PATCH empty name status=%d body=%s", status, data)
	}
	if got := decode[models.Board](t, data); got.Name != "Sprint 13" {
		t.Errorf("empty-name PATCH changed name to %q", got.Name)
	}
	status, data = request(t, app, http.MethodPatch, fmt.Sprintf("/boards/%d", board.ID), fiber.Map{})
	if status != http.StatusOK {
		t.Fatalf("PATCH empty body status=%d body=%s", status, data)
	}
	if got := decode[models.Board](t, data); got.Name != "Sprint 13" {
		t.Errorf("empty-body PATCH changed name to %q", got.Name)
	}

	// delete, then everything 404s
	status, _ = request(t, app, http.MethodDelete, fmt.Sprintf("/boards/%d", board.ID), nil)
	if status != http.StatusNoContent {
		t.Fatalf("DELETE status=%d, want 204", status)
	}
	status, _ = request(t, app, http.MethodGet, fmt.Sprintf("/boards/%d", board.ID), nil)
	if status != http.StatusNotFound {
		t.Errorf("GET after delete status=%d, want 404", status)
	}
	status, _ = request(t, app, http.MethodDelete, fmt.Sprintf("/boards/%d", board.ID), nil)
	if status != http.StatusNotFound {
		t.Errorf("DELETE nonexistent status=%d, want 404", status)
	}
	status, _ = request(t, app, http.MethodPatch, fmt.Sprintf("/boards/%d", board.ID), fiber.Map{"name": "x"})
	if status != http.StatusNotFound {
		t.Errorf("PATCH nonexistent status=%d, want 404", status)
	}
}

func TestBoards_ListAndFilter(t *testing.T) {
	app := setupApp(t)

	status, data := request(t, app, http.MethodGet, "/boards", nil)
	if status != http.StatusOK {
		t.Fatalf("GET /boards status=%d", status)
	}
	if boards := decode[[]models.Board](t, data); len(boards) != 0 {
		t.Errorf("empty listing returned %d boards", len(boards))
	}
	if string(data) != "[]" {
		t.Errorf("empty listing body = %s, want []", data)
	}

	for _, name := range []string{"backend", "backlog", "design"} {
		createBoard(t, app, name)
	}

	_, data = request(t, app, http.MethodGet, "/boards", nil)
	if boards := decode[[]models.Board](t, data); len(boards) != 3 {
		t.Errorf("listing returned %d boards, want 3", len(boards))
	}

	_, data = request(t, app, http.MethodGet, "/boards?q=back", nil)
	boards := decode[[]models.Board](t, data)
	if len(boards) != 2 {
		t.Errorf("q=back returned %d boards, want 2", len(boards))
	}
	for _, b := range boards {
		if b.Name != "backend" && b.Name != "backlog" {
			t.Errorf("q=back matched %q", b.Name)
		}
	}

	_, data = request(t, app, http.MethodGet, "/boards?offset=1&limit=1", nil)
	if boards := decode[[]models.Board](t, data); len(boards) != 1 {
		t.Errorf("offset=1&limit=1 returned %d boards, want 1", len(boards))
	}

	// limit above the configured maximum is clamped, not an error
	status, _ = request(t, app, http.MethodGet, "/boards?limit=10000", nil)
	if status != http.StatusOK {
		t.Errorf("oversized limit status=%d, want 200", status)
	}
}

func TestBoards_Validation(t *testing.T) {
	app := setupApp(t)

	// missing required name
	status, _ := request(t, app, http.MethodPost, "/boards", fiber.Map{})
	if status != http.StatusUnprocessableEntity {
		t.Errorf("POST without name status=%d, want 422", status)
	}

	// malformed JSON
	status, _ = requestRaw(t, app, http.MethodPost, "/boards", "{not json")
	if status != http.StatusBadRequest {
		t.Errorf("POST malformed body status=%d, want 400", status)
	}

	// non-numeric id
	status, _ = request(t, app, http.MethodGet, "/boards/abc", nil)
	if status != http.StatusBadRequest {
		t.Errorf("GET /boards/abc status=%d, want 400", status)
	}
}

func TestBoards_Tasks(t *testing.T) {
	app := setupApp(t)

	status, _ := request(t, app, http.MethodGet, "/boards/99/tasks", nil)
	if status != http.StatusNotFound {
		t.Errorf("tasks of missing board status=%d, want 404", status)
	}

	board := createBoard(t, app, "work")
	other := createBoard(t, app, "other")

	createTask(t, app, fiber.Map{"name": "t1", "board_id": board.ID})
	createTask(t, app, fiber.Map{"name": "t2", "board_id": board.ID})
	createTask(t, app, fiber.Map{"name": "elsewhere", "board_id": other.ID})

	status, data := request(t, app, http.MethodGet, fmt.Sprintf("/boards/%d/tasks", board.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("GET board tasks status=%d body=%s", status, data)
	}
	tasks := decode[[]models.Task](t, data)
	if len(tasks) != 2 {
		t.Errorf("board has %d tasks, want 2", len(tasks))
	}
	for _, task := range tasks {
		if task.BoardID == nil || *task.BoardID != board.ID {
			t.Errorf("task %q does not belong to the board: %+v", task.Name, task.BoardID)
		}
	}

	// board without tasks returns an empty list
	empty := createBoard(t, app, "empty")
	status, data = request(t, app, http.MethodGet, fmt.Sprintf("/boards/%d/tasks", empty.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("GET empty board tasks status=%d", status)
	}
	if string(data) != "[]" {
		t.Errorf("empty board tasks body = %s, want []", data)
	}
}

func TestBoards_Participants(t *testing.T) {
	app := setupApp(t)

	board := createBoard(t, app, "shared")
	alice := createUser(t, app, "alice")

	path := fmt.Sprintf("/boards/%d/participants", board.ID)

	status, data := request(t, app, http.MethodPost, path, fiber.Map{"user_id": alice.ID})
	if status != http.StatusCreated {
		t.Fatalf("add participant status=%d body=%s", status, data)
	}

	status, data = request(t, app, http.MethodGet, path, nil)
	if status != http.StatusOK {
		t.Fatalf("list participants status=%d", status)
	}
	users := decode[[]models.User](t, data)
	if len(users) != 1 || users[0].ID != alice.ID {
		t.Errorf("participants = %+v, want alice only", users)
	}

	// unknown user
	status, _ = request(t, app, http.MethodPost, path, fiber.Map{"user_id": 999})
	if status != http.StatusNotFound {
		t.Errorf("add unknown user status=%d, want 404", status)
	}
	// missing user_id
	status, _ = request(t, app, http.MethodPost, path, fiber.Map{})
	if status != http.StatusUnprocessableEntity {
		t.Errorf("add without user_id status=%d, want 422", status)
	}
	// unknown board
	status, _ = request(t, app, http.MethodPost, "/boards/999/participants", fiber.Map{"user_id": alice.ID})
	if status != http.StatusNotFound {
		t.Errorf("add to missing board status=%d, want 404", status)
	}
	status, _ = request(t, app, http.MethodGet, "/boards/999/participants", nil)
	if status != http.StatusNotFound {
		t.Errorf("list of missing board status=%d, want 404", status)
	}

	status, _ = request(t, app, http.MethodDelete, fmt.Sprintf("%s/%d", path, alice.ID), nil)
	if status != http.StatusNoContent {
		t.Errorf("remove participant status=%d, want 204", status)
	}
	status, _ = request(t, app, http.MethodDelete, fmt.Sprintf("%s/%d", path, alice.ID), nil)
	if status != http.StatusNotFound {
		t.Errorf("remove again status=%d, want 404", status)
	}
}
