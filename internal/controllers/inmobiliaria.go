package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/internal/entities"
	"github.com/JuanDPAffi/redelex-api/internal/services"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	"github.com/JuanDPAffi/redelex-api/pkg/types"
	"github.com/JuanDPAffi/redelex-api/pkg/utils"
)

type InmobiliariaController struct {
	inmoService services.InmobiliariaServiceInterface
	importer    services.InmobiliariaImporterInterface
	logger      *zap.Logger
}

func NewInmobiliariaController(
	inmoService services.InmobiliariaServiceInterface,
	importer services.InmobiliariaImporterInterface,
	logger *zap.Logger,
) *InmobiliariaController {
	return &InmobiliariaController{
		inmoService: inmoService,
		importer:    importer,
		logger:      logger,
	}
}

func (ctrl *InmobiliariaController) GetInmobiliarias(c echo.Context) error {
	filter := utils.ParseFilter(c.Request().URL.Query())

	list, total, err := ctrl.inmoService.GetInmobiliarias(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	body := map[string]interface{}{
		"list":       list,
		"pagination": types.NewPagination(total, filter.Page, filter.Limit),
	}
	return utils.SuccessResponse(c, body, "Inmobiliarias obtenidas", http.StatusOK)
}

func (ctrl *InmobiliariaController) FindInmobiliaria(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	inmo, err := ctrl.inmoService.FindInmobiliaria(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, inmo, "Inmobiliaria obtenida", http.StatusOK)
}

func (ctrl *InmobiliariaController) CreateInmobiliaria(c echo.Context) error {
	var payload dto.CreateInmobiliariaDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("formato de datos no válido"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	inmo, err := ctrl.inmoService.CreateInmobiliaria(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, inmo, "Inmobiliaria creada", http.StatusCreated)
}

func (ctrl *InmobiliariaController) UpdateInmobiliaria(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateInmobiliariaDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("formato de datos no válido"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	inmo, err := ctrl.inmoService.UpdateInmobiliaria(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, inmo, "Inmobiliaria actualizada", http.StatusOK)
}

func (ctrl *InmobiliariaController) DeleteInmobiliaria(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.inmoService.DeleteInmobiliaria(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Inmobiliaria eliminada", http.StatusOK)
}

// Import receives an XLSX under the "file" form field and bulk-loads it.
func (ctrl *InmobiliariaController) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("se requiere un archivo en el campo 'file'"), ctrl.logger)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("no se pudo leer el archivo"), ctrl.logger)
	}
	defer src.Close()

	result, err := ctrl.importer.Import(c.Request().Context(), src)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, result, "Importación finalizada", http.StatusOK)
}

var inmobiliariaHeaders = []string{
	"ID", "Nombre", "NIT", "Código", "Email", "Teléfono", "Ciudad", "Dirección", "Activa",
}

func inmobiliariaRowToSlice(m entities.Inmobiliaria) []interface{} {
	str := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}
	activa := "No"
	if m.IsActive {
		activa = "Sí"
	}
	return []interface{}{
		m.ID, m.Nombre, m.Nit, m.Codigo, str(m.Email), str(m.Telefono), str(m.Ciudad), str(m.Direccion), activa,
	}
}

func (ctrl *InmobiliariaController) Export(c echo.Context) error {
	list, err := ctrl.inmoService.ListForExport(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	f := excelize.NewFile()
	sheet := "Inmobiliarias"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &inmobiliariaHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, m := range list {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := inmobiliariaRowToSlice(m)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 35)
	f.SetColWidth(sheet, "E", "H", 25)

	fileName := fmt.Sprintf("inmobiliarias_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
