package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/quote"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/internal/domain/service"
	"github.com/hugohenrick/gestor-pme/internal/domain/serviceorder"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/hugohenrick/gestor-pme/internal/pos"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// Clock devolve o instante de referência das regras de data
type Clock func() time.Time

var notFoundErrors = []error{
	client.ErrNotFound,
	product.ErrNotFound,
	sale.ErrNotFound,
	financial.ErrNotFound,
	quote.ErrNotFound,
	servicetype.ErrNotFound,
	service.ErrNotFound,
	serviceorder.ErrNotFound,
	user.ErrNotFound,
}

// statusFor traduz erros do domínio no status HTTP. Zero indica erro interno.
func statusFor(err error) int {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	switch {
	case errors.Is(err, entity.ErrInvalidSort),
		errors.Is(err, financial.ErrInvalidRange),
		errors.Is(err, dto.ErrInvalidDate),
		errors.Is(err, financial.ErrInvalidStatus),
		errors.Is(err, quote.ErrInvalidStatus),
		errors.Is(err, quote.ErrEmptyClient),
		errors.Is(err, quote.ErrInvalidItemType),
		errors.Is(err, serviceorder.ErrInvalidSchedule):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrDuplicateEmail),
		errors.Is(err, financial.ErrInvalidStatusTransition),
		errors.Is(err, pos.ErrCartConflict):
		return http.StatusConflict
	case errors.Is(err, pos.ErrIncompleteSale),
		errors.Is(err, pos.ErrItemNotInCart),
		errors.Is(err, sale.ErrInvalidPaymentMethod),
		errors.Is(err, sale.ErrInvalidInstallments):
		return http.StatusUnprocessableEntity
	}
	return 0
}

// respondError escreve a resposta de erro. Erros não mapeados são registrados e viram 500.
func respondError(ctx *gin.Context, log logger.Logger, message string, err error) {
	code := statusFor(err)
	if code == 0 {
		log.Error(message, "error", err, "path", ctx.FullPath())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
		return
	}
	if code == http.StatusUnprocessableEntity {
		// a mensagem do domínio é a exibida ao operador
		ctx.JSON(code, dto.NewErrorResponse(code, err.Error(), ""))
		return
	}
	ctx.JSON(code, dto.NewErrorResponse(code, message, err.Error()))
}

// badRequest responde 400 para falhas de bind e de validação do domínio
func badRequest(ctx *gin.Context, message string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, err.Error()))
}

// bindJSON decodifica o corpo e responde 400 em caso de falha
func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return false
	}
	return true
}

// listOptions lê ?sort= e ?search= da consulta
func listOptions(ctx *gin.Context) entity.ListOptions {
	return entity.NewListOptions(ctx.Query("sort"), ctx.Query("search"))
}
