package common

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Code string

const (
	SUCCESS Code = "SUCCESS"
	FAIL    Code = "FAIL"
)

var BadRequestErr = fmt.Errorf("bad request")

func Response(ctx *gin.Context, status int, code Code, message string, data interface{}) {
	ctx.JSON(status, gin.H{
		"Code":    code,
		"Message": message,
		"Data":    data,
	})
}

func ResponseSuccess(ctx *gin.Context, data interface{}) {
	Response(ctx, http.StatusOK, SUCCESS, "", data)
}

func ResponseError(ctx *gin.Context, status int, err error, data interface{}) {
	Response(ctx, status, FAIL, err.Error(), data)
}

func ResponseBadRequestError(ctx *gin.Context) {
	ResponseError(ctx, http.StatusBadRequest, BadRequestErr, nil)
}
