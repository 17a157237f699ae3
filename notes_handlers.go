package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type NoteReq struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Background string `json:"bgColor"`
}

func ListNotes(notes *NotesStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, notes.List())
	}
}

func CreateNote(notes *NotesStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NoteReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		note, err := notes.Create(req.Title, req.Content, req.Background)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, note)
	}
}

func UpdateNote(notes *NotesStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NoteReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		note, err := notes.Update(c.Param("id"), req.Title, req.Content, req.Background)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, note)
	}
}

func DeleteNote(notes *NotesStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := notes.Delete(c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

type TaskReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"dueDate"`
}

func ListTasks(tasks *TasksStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, tasks.List())
	}
}

func CreateTask(tasks *TasksStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TaskReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		task, err := tasks.Create(req.Title, req.Description, req.Priority, req.DueDate)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, task)
	}
}

func ToggleTask(tasks *TasksStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, err := tasks.Toggle(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

func DeleteTask(tasks *TasksStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := tasks.Delete(c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
