package httpresp

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

// Mensaje responde {"mensaje": ...} como el resto de confirmaciones del API.
func Mensaje(c *gin.Context, mensaje string) {
	c.JSON(200, gin.H{"mensaje": mensaje})
}
