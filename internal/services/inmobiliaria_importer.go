package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/internal/entities"
	"github.com/JuanDPAffi/redelex-api/internal/repositories"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
)

type InmobiliariaImporterInterface interface {
	Import(ctx context.Context, file io.Reader) (*dto.ImportResultDTO, error)
}

type InmobiliariaImporter struct {
	inmoRepo repositories.InmobiliariaRepositoryInterface
	logger   *zap.Logger
}

func NewInmobiliariaImporter(inmoRepo repositories.InmobiliariaRepositoryInterface, logger *zap.Logger) InmobiliariaImporterInterface {
	return &InmobiliariaImporter{inmoRepo: inmoRepo, logger: logger}
}

// columnIndexes holds the positions found during header detection. The
// files coming from the business side are hand-made, so the header row is
// not always the first one and column titles vary in spelling.
type columnIndexes struct {
	nombre, nit, codigo, email, telefono, ciudad, direccion int
}

func newColumnIndexes() columnIndexes {
	return columnIndexes{nombre: -1, nit: -1, codigo: -1, email: -1, telefono: -1, ciudad: -1, direccion: -1}
}

func (c columnIndexes) complete() bool {
	return c.nombre != -1 && c.nit != -1
}

func normalizeHeader(s string) string {
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
		".", "", ":", "", "#", "",
	)
	return replacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

func detectColumns(row []string) columnIndexes {
	idx := newColumnIndexes()
	for i, col := range row {
		switch h := normalizeHeader(col); {
		case strings.Contains(h, "nombre") || strings.Contains(h, "razon social"):
			idx.nombre = i
		case strings.Contains(h, "nit") || strings.Contains(h, "identificacion"):
			idx.nit = i
		case strings.Contains(h, "codigo"):
			idx.codigo = i
		case strings.Contains(h, "correo") || strings.Contains(h, "email"):
			idx.email = i
		case strings.Contains(h, "telefono") || strings.Contains(h, "celular"):
			idx.telefono = i
		case strings.Contains(h, "ciudad") || strings.Contains(h, "municipio"):
			idx.ciudad = i
		case strings.Contains(h, "direccion"):
			idx.direccion = i
		}
	}
	return idx
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isSummaryRow(v string) bool {
	l := strings.ToLower(v)
	return strings.Contains(l, "total") || strings.Contains(l, "subtotal")
}

// Import loads an XLSX of inmobiliarias, matching rows to existing records
// by NIT. Rows without nombre or NIT are skipped, row-level failures are
// collected instead of aborting the whole load.
func (s *InmobiliariaImporter) Import(ctx context.Context, file io.Reader) (*dto.ImportResultDTO, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, apperrors.NewBadRequestError("el archivo no es un XLSX válido")
	}
	defer f.Close()

	var (
		dataRows  [][]string
		idx       columnIndexes
		headerRow = -1
	)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for rIdx, row := range rows {
			if candidate := detectColumns(row); candidate.complete() {
				dataRows = rows
				idx = candidate
				headerRow = rIdx
				break
			}
		}
		if headerRow != -1 {
			break
		}
	}
	if headerRow == -1 {
		return nil, apperrors.NewBadRequestError("no se encontró la fila de encabezados: se requieren columnas 'nombre' y 'nit'")
	}

	result := &dto.ImportResultDTO{Errors: []string{}}
	for i := headerRow + 1; i < len(dataRows); i++ {
		row := dataRows[i]
		lineNum := i + 1

		nombre := cellAt(row, idx.nombre)
		nit := cellAt(row, idx.nit)
		if nombre == "" && nit == "" {
			continue
		}
		if nombre == "" || nit == "" || isSummaryRow(nombre) {
			result.Skipped++
			continue
		}

		codigo := cellAt(row, idx.codigo)
		if codigo == "" {
			codigo = nit
		}

		inmo := &entities.Inmobiliaria{
			Nombre:    nombre,
			Nit:       nit,
			Codigo:    codigo,
			Email:     strOrNil(cellAt(row, idx.email)),
			Telefono:  strOrNil(cellAt(row, idx.telefono)),
			Ciudad:    strOrNil(cellAt(row, idx.ciudad)),
			Direccion: strOrNil(cellAt(row, idx.direccion)),
		}

		inserted, err := s.inmoRepo.Upsert(ctx, inmo)
		if err != nil {
			s.logger.Warn("fila de importación fallida",
				zap.Int("fila", lineNum), zap.String("nit", nit), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("fila %d (NIT %s): %v", lineNum, nit, err))
			continue
		}
		if inserted {
			result.Created++
		} else {
			result.Updated++
		}
	}

	s.logger.Info("importación de inmobiliarias finalizada",
		zap.Int("creadas", result.Created),
		zap.Int("actualizadas", result.Updated),
		zap.Int("omitidas", result.Skipped),
		zap.Int("errores", len(result.Errors)))
	return result, nil
}
