package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Register(auth *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		user, err := auth.Register(req.Username, req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user.ToPublic())
	}
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(auth *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		user, err := auth.Login(req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, user.ToPublic())
	}
}

func Logout(auth *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Logout(); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"loggedOut": true})
	}
}

// Me returns the persisted current user or 401.
func Me(auth *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.JSON(http.StatusOK, user.ToPublic())
	}
}
