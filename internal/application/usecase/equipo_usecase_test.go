package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// Fakes mínimos para el registro de equipos: secuencia en memoria por prefijo y
// repos que acumulan las escrituras.

type equipoFixture struct {
	equipos    map[string]*entity.Equipo
	porSerie   map[string]*entity.Equipo
	historial  []*entity.HistorialEquipo
	secuencias map[string]int64
	custodias  []string
}

func nuevoFixture() *equipoFixture {
	return &equipoFixture{
		equipos:    make(map[string]*entity.Equipo),
		porSerie:   make(map[string]*entity.Equipo),
		secuencias: make(map[string]int64),
	}
}

type fxEquipoRepo struct{ fx *equipoFixture }

func (f *fxEquipoRepo) Create(e *entity.Equipo) error {
	f.fx.equipos[e.ID] = e
	f.fx.porSerie[e.NumeroSerie] = e
	return nil
}
func (f *fxEquipoRepo) GetByID(id string) (*entity.Equipo, error) { return f.fx.equipos[id], nil }
func (f *fxEquipoRepo) GetBySerie(serie string) (*entity.Equipo, error) {
	return f.fx.porSerie[serie], nil
}
func (f *fxEquipoRepo) List(repository.FiltroEquipos) ([]*entity.Equipo, error) { return nil, nil }
func (f *fxEquipoRepo) Update(e *entity.Equipo) error {
	f.fx.equipos[e.ID] = e
	return nil
}
func (f *fxEquipoRepo) ClaimParaEntrega(string) (*entity.Equipo, error) { return nil, nil }
func (f *fxEquipoRepo) UpdateCustodia(id string, estadoFisicoID int, disponible bool, _ *string, _ string) error {
	e := f.fx.equipos[id]
	if e == nil {
		return domain.ErrNotFound
	}
	e.EstadoFisicoID = estadoFisicoID
	e.Disponible = disponible
	f.fx.custodias = append(f.fx.custodias, id)
	return nil
}
func (f *fxEquipoRepo) ListMarcas() ([]string, error)                      { return nil, nil }
func (f *fxEquipoRepo) ListEstadosFisicos() ([]entity.EstadoFisico, error) { return nil, nil }

type fxSecRepo struct{ fx *equipoFixture }

func (f *fxSecRepo) Next(prefijo string) (int64, error) {
	f.fx.secuencias[prefijo]++
	return f.fx.secuencias[prefijo], nil
}

type fxHistRepo struct{ fx *equipoFixture }

func (f *fxHistRepo) Create(h *entity.HistorialEquipo) error {
	f.fx.historial = append(f.fx.historial, h)
	return nil
}
func (f *fxHistRepo) ListByEquipo(equipoID string) ([]*entity.HistorialEquipo, error) {
	var out []*entity.HistorialEquipo
	for _, h := range f.fx.historial {
		if h.EquipoID == equipoID {
			out = append(out, h)
		}
	}
	return out, nil
}

type fxUserRepo struct{}

func (f *fxUserRepo) Create(*entity.Usuario) error                { return nil }
func (f *fxUserRepo) GetByID(string) (*entity.Usuario, error)     { return nil, nil }
func (f *fxUserRepo) FindByEmail(string) (*entity.Usuario, error) { return nil, nil }
func (f *fxUserRepo) List() ([]*entity.Usuario, error)            { return nil, nil }
func (f *fxUserRepo) Update(*entity.Usuario) error                { return nil }
func (f *fxUserRepo) UpdateActivo(string, bool) error             { return nil }
func (f *fxUserRepo) UpdatePassword(string, string) error         { return nil }

type fxTxRunner struct{ fx *equipoFixture }

func (r *fxTxRunner) RunEquipo(ctx context.Context, fn func(
	repository.EquipoRepository, repository.SecuenciaRepository, repository.HistorialRepository) error) error {
	return fn(&fxEquipoRepo{fx: r.fx}, &fxSecRepo{fx: r.fx}, &fxHistRepo{fx: r.fx})
}

func (r *fxTxRunner) RunMovimiento(ctx context.Context, fn func(
	repository.EquipoRepository, repository.MovimientoRepository,
	repository.HistorialRepository, repository.NotificacionRepository) error) error {
	panic("no usado en estas pruebas")
}

func nuevoEquipoUC(fx *equipoFixture) *EquipoUseCase {
	return NewEquipoUseCase(&fxTxRunner{fx: fx}, &fxEquipoRepo{fx: fx}, &fxHistRepo{fx: fx}, &fxUserRepo{})
}

func crearRequest(serie string, esPropio bool) dto.CreateEquipoRequest {
	return dto.CreateEquipoRequest{
		EmpresaID:      "emp-1",
		Marca:          "HP",
		Modelo:         "EliteBook 840",
		NumeroSerie:    serie,
		EsPropio:       esPropio,
		EstadoFisicoID: entity.EstadoOperativo,
	}
}

func TestEquipoCreate_AsignaCodigoSecuencial(t *testing.T) {
	fx := nuevoFixture()
	uc := nuevoEquipoUC(fx)

	primero, err := uc.Create(context.Background(), "usr-1", crearRequest("SN-001", true))
	require.NoError(t, err)
	segundo, err := uc.Create(context.Background(), "usr-1", crearRequest("SN-002", true))
	require.NoError(t, err)

	assert.Equal(t, "EQP-0001", primero.CodigoPatrimonial)
	assert.Equal(t, "EQP-0002", segundo.CodigoPatrimonial)
}

func TestEquipoCreate_PrefijoAlquilado(t *testing.T) {
	fx := nuevoFixture()
	uc := nuevoEquipoUC(fx)

	// Las secuencias de propios y alquilados son independientes.
	_, err := uc.Create(context.Background(), "usr-1", crearRequest("SN-001", true))
	require.NoError(t, err)
	alquilado, err := uc.Create(context.Background(), "usr-1", crearRequest("SN-002", false))
	require.NoError(t, err)

	assert.Equal(t, "EQAL-0001", alquilado.CodigoPatrimonial)
}

func TestEquipoCreate_SerieDuplicada(t *testing.T) {
	fx := nuevoFixture()
	uc := nuevoEquipoUC(fx)

	_, err := uc.Create(context.Background(), "usr-1", crearRequest("SN-001", true))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "usr-1", crearRequest("SN-001", true))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEquipoCreate_DisponibilidadSegunEstadoFisico(t *testing.T) {
	fx := nuevoFixture()
	uc := nuevoEquipoUC(fx)

	operativo, err := uc.Create(context.Background(), "usr-1", crearRequest("SN-001", true))
	require.NoError(t, err)
	assert.True(t, operativo.Disponible)

	req := crearRequest("SN-002", true)
	req.EstadoFisicoID = entity.EstadoMantenimiento
	mantenimiento, err := uc.Create(context.Background(), "usr-1", req)
	require.NoError(t, err)
	assert.False(t, mantenimiento.Disponible)
	assert.Equal(t, entity.EstadoMantenimiento, mantenimiento.EstadoFisicoID)
}

func TestEquipoCreate_EscribeHistorialInicial(t *testing.T) {
	fx := nuevoFixture()
	uc := nuevoEquipoUC(fx)

	resp, err := uc.Create(context.Background(), "usr-1", crearRequest("SN-001", true))
	require.NoError(t, err)

	require.Len(t, fx.historial, 1)
	h := fx.historial[0]
	assert.Equal(t, entity.AccionRegistroInicial, h.Accion)
	assert.Equal(t, resp.ID, h.EquipoID)
	assert.Contains(t, h.Descripcion, "EQP-0001")
	assert.Contains(t, h.Descripcion, "SN-001")
}

func TestEquipoUpdate_EstadoNoOperativoQuitaDisponibilidad(t *testing.T) {
	fx := nuevoFixture()
	uc := nuevoEquipoUC(fx)

	creado, err := uc.Create(context.Background(), "usr-1", crearRequest("SN-001", true))
	require.NoError(t, err)
	require.True(t, creado.Disponible)

	averiado := entity.EstadoAveriado
	resp, err := uc.Update(context.Background(), creado.ID, "usr-2", dto.UpdateEquipoRequest{
		EstadoFisicoID: &averiado,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.EstadoAveriado, resp.EstadoFisicoID)
	assert.False(t, resp.Disponible)
	assert.False(t, fx.equipos[creado.ID].Disponible)
}

func TestEquipoUpdate_EstadoOperativoNoHabilitaSolo(t *testing.T) {
	fx := nuevoFixture()
	uc := nuevoEquipoUC(fx)

	req := crearRequest("SN-001", true)
	req.EstadoFisicoID = entity.EstadoMantenimiento
	creado, err := uc.Create(context.Background(), "usr-1", req)
	require.NoError(t, err)
	require.False(t, creado.Disponible)

	// Volver a operativo por edición no habilita el equipo; eso va por la
	// reactivación explícita o la devolución.
	operativo := entity.EstadoOperativo
	resp, err := uc.Update(context.Background(), creado.ID, "usr-2", dto.UpdateEquipoRequest{
		EstadoFisicoID: &operativo,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.EstadoOperativo, resp.EstadoFisicoID)
	assert.False(t, resp.Disponible)
}

func TestEquipoUpdate_IDInexistente(t *testing.T) {
	fx := nuevoFixture()
	uc := nuevoEquipoUC(fx)

	marca := "Lenovo"
	resp, err := uc.Update(context.Background(), "no-existe", "usr-1", dto.UpdateEquipoRequest{Marca: &marca})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestSetDisponibilidad_ReactivarFuerzaOperativo(t *testing.T) {
	fx := nuevoFixture()
	uc := nuevoEquipoUC(fx)

	req := crearRequest("SN-001", true)
	req.EstadoFisicoID = entity.EstadoMantenimiento
	creado, err := uc.Create(context.Background(), "usr-1", req)
	require.NoError(t, err)

	resp, err := uc.SetDisponibilidad(context.Background(), creado.ID, "usr-2", true)
	require.NoError(t, err)
	assert.True(t, resp.Disponible)
	assert.Equal(t, entity.EstadoOperativo, resp.EstadoFisicoID)

	// Historial: registro inicial + activación.
	require.Len(t, fx.historial, 2)
	assert.Equal(t, entity.AccionActivacion, fx.historial[1].Accion)
}

func TestSetDisponibilidad_DesactivarConservaEstadoFisico(t *testing.T) {
	fx := nuevoFixture()
	uc := nuevoEquipoUC(fx)

	creado, err := uc.Create(context.Background(), "usr-1", crearRequest("SN-001", true))
	require.NoError(t, err)

	resp, err := uc.SetDisponibilidad(context.Background(), creado.ID, "usr-2", false)
	require.NoError(t, err)
	assert.False(t, resp.Disponible)
	assert.Equal(t, entity.EstadoOperativo, resp.EstadoFisicoID)
}
