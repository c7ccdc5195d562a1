package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/internal/entities"
	"github.com/JuanDPAffi/redelex-api/internal/services"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	"github.com/JuanDPAffi/redelex-api/pkg/utils"
)

type ProcesoController struct {
	procesoService services.ProcesoServiceInterface
	reportService  services.ReportServiceInterface
	logger         *zap.Logger
}

func NewProcesoController(
	procesoService services.ProcesoServiceInterface,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
) *ProcesoController {
	return &ProcesoController{
		procesoService: procesoService,
		reportService:  reportService,
		logger:         logger,
	}
}

func (ctrl *ProcesoController) MisProcesos(c echo.Context) error {
	sess, err := session.FromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	list, err := ctrl.procesoService.MisProcesos(c.Request().Context(), sess)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, list, "Procesos obtenidos", http.StatusOK)
}

func (ctrl *ProcesoController) ProcesosPorIdentificacion(c echo.Context) error {
	sess, err := session.FromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	identificacion := strings.TrimSpace(c.Param("identificacion"))
	result, err := ctrl.procesoService.ProcesosPorIdentificacion(c.Request().Context(), sess, identificacion)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, result, "Procesos obtenidos", http.StatusOK)
}

func (ctrl *ProcesoController) Detalle(c echo.Context) error {
	sess, err := session.FromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	detalle, err := ctrl.procesoService.Detalle(c.Request().Context(), sess, id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, detalle, "Proceso obtenido", http.StatusOK)
}

// InformeInmobiliaria serves the report as JSON, or as an XLSX download
// when format=xlsx is requested.
func (ctrl *ProcesoController) InformeInmobiliaria(c echo.Context) error {
	sess, err := session.FromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if strings.EqualFold(c.QueryParam("format"), "xlsx") {
		rows, err := ctrl.reportService.InformeForExport(c.Request().Context(), sess, id)
		if err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
		return ctrl.respondWithXLSX(c, id, rows)
	}

	informe, err := ctrl.reportService.InformeInmobiliaria(c.Request().Context(), sess, id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, informe, "Informe generado", http.StatusOK)
}

var informeHeaders = []string{
	"ID Proceso", "Clase de Proceso", "Identificación Demandado", "Demandado",
	"Identificación Demandante", "Demandante", "Código Alterno", "Etapa Procesal",
	"Fecha Recepción", "Sentencia Primera Instancia", "Despacho", "Radicación", "Ciudad Inmueble",
}

func informeRowToSlice(r entities.InformeRow) []interface{} {
	str := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}
	return []interface{}{
		r.ProcesoID, str(r.ClaseProceso), r.DemandadoIdentificacion, r.DemandadoNombre,
		r.DemandanteIdentificacion, r.DemandanteNombre, str(r.CodigoAlterno), str(r.EtapaProcesal),
		dto.FormatFecha(r.FechaRecepcionProceso), str(r.SentenciaPrimeraInstancia),
		str(r.Despacho), str(r.NumeroRadicacion), str(r.CiudadInmueble),
	}
}

func (ctrl *ProcesoController) respondWithXLSX(c echo.Context, inmobiliariaID uint64, rows []entities.InformeRow) error {
	f := excelize.NewFile()
	sheet := "Informe"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &informeHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := informeRowToSlice(r)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "F", 25)
	f.SetColWidth(sheet, "H", "H", 20)
	f.SetColWidth(sheet, "J", "K", 30)

	fileName := fmt.Sprintf("informe_inmobiliaria_%d_%s.xlsx", inmobiliariaID, time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
