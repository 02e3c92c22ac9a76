package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velatec/activos-api/internal/application/usecase"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
	apphttp "github.com/velatec/activos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes vacíos: repos sin filas, para probar las respuestas sobre IDs que no
// existen.
// ──────────────────────────────────────────────────────────────────────────────

type sinEquipos struct{}

func (sinEquipos) Create(*entity.Equipo) error               { return nil }
func (sinEquipos) GetByID(string) (*entity.Equipo, error)    { return nil, nil }
func (sinEquipos) GetBySerie(string) (*entity.Equipo, error) { return nil, nil }
func (sinEquipos) List(repository.FiltroEquipos) ([]*entity.Equipo, error) {
	return nil, nil
}
func (sinEquipos) Update(*entity.Equipo) error                     { return nil }
func (sinEquipos) ClaimParaEntrega(string) (*entity.Equipo, error) { return nil, nil }
func (sinEquipos) UpdateCustodia(string, int, bool, *string, string) error {
	return nil
}
func (sinEquipos) ListMarcas() ([]string, error)                      { return nil, nil }
func (sinEquipos) ListEstadosFisicos() ([]entity.EstadoFisico, error) { return nil, nil }

type sinHistorial struct{}

func (sinHistorial) Create(*entity.HistorialEquipo) error { return nil }
func (sinHistorial) ListByEquipo(string) ([]*entity.HistorialEquipo, error) {
	return nil, nil
}

type sinUsuarios struct{}

func (sinUsuarios) Create(*entity.Usuario) error                { return nil }
func (sinUsuarios) GetByID(string) (*entity.Usuario, error)     { return nil, nil }
func (sinUsuarios) FindByEmail(string) (*entity.Usuario, error) { return nil, nil }
func (sinUsuarios) List() ([]*entity.Usuario, error)            { return nil, nil }
func (sinUsuarios) Update(*entity.Usuario) error                { return nil }
func (sinUsuarios) UpdateActivo(string, bool) error             { return nil }
func (sinUsuarios) UpdatePassword(string, string) error         { return nil }

type sinSecuencias struct{}

func (sinSecuencias) Next(string) (int64, error) { return 1, nil }

type txDirecto struct{}

func (txDirecto) RunEquipo(_ context.Context, fn func(
	repository.EquipoRepository, repository.SecuenciaRepository, repository.HistorialRepository) error) error {
	return fn(sinEquipos{}, sinSecuencias{}, sinHistorial{})
}

func (txDirecto) RunMovimiento(_ context.Context, fn func(
	repository.EquipoRepository, repository.MovimientoRepository,
	repository.HistorialRepository, repository.NotificacionRepository) error) error {
	panic("no usado en estas pruebas")
}

type sinEmpresas struct{}

func (sinEmpresas) Create(*entity.Empresa) error             { return nil }
func (sinEmpresas) GetByID(string) (*entity.Empresa, error)  { return nil, nil }
func (sinEmpresas) GetByRUC(string) (*entity.Empresa, error) { return nil, nil }
func (sinEmpresas) List(bool) ([]*entity.Empresa, error)     { return nil, nil }
func (sinEmpresas) Update(*entity.Empresa) error             { return nil }
func (sinEmpresas) SetEstado(string, bool, string) error     { return nil }

// buildEquipoApp monta las rutas de edición de equipos y empresas sobre repos
// vacíos, sin middleware de autenticación.
func buildEquipoApp() *fiber.App {
	equipoUC := usecase.NewEquipoUseCase(txDirecto{}, sinEquipos{}, sinHistorial{}, sinUsuarios{})
	equipoH := apphttp.NewEquipoHandler(equipoUC)
	empresaH := apphttp.NewEmpresaHandler(usecase.NewEmpresaUseCase(sinEmpresas{}))

	app := fiber.New()
	app.Put("/api/equipos/:id", equipoH.Update)
	app.Put("/api/equipos/:id/disponibilidad", equipoH.SetDisponibilidad)
	app.Put("/api/empresas/:id", empresaH.Update)
	return app
}

func doPutJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Editar un equipo que no existe debe devolver 404, nunca 200 con cuerpo nulo.
func TestEquipoUpdate_IDInexistente_Retorna404(t *testing.T) {
	app := buildEquipoApp()

	resp := doPutJSON(t, app, "/api/equipos/no-existe", `{"marca":"HP"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assertCuerpoNotFound(t, resp, "equipo no encontrado")
}

func TestSetDisponibilidad_IDInexistente_Retorna404(t *testing.T) {
	app := buildEquipoApp()

	resp := doPutJSON(t, app, "/api/equipos/no-existe/disponibilidad", `{"disponible":true}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assertCuerpoNotFound(t, resp, "equipo no encontrado")
}

func TestEmpresaUpdate_IDInexistente_Retorna404(t *testing.T) {
	app := buildEquipoApp()

	resp := doPutJSON(t, app, "/api/empresas/no-existe", `{"razon_social":"Otra SAC"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assertCuerpoNotFound(t, resp, "empresa no encontrada")
}

func assertCuerpoNotFound(t *testing.T, resp *http.Response, mensaje string) {
	t.Helper()
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, mensaje, body.Message)
}
