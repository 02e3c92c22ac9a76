package custody

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de custodia. El txRunner falso imita el
// comportamiento transaccional real: las escrituras hechas dentro del callback
// se descartan cuando este devuelve error.

type almacen struct {
	equipos      map[string]*entity.Equipo
	colaborador  *entity.Colaborador
	empresa      *entity.Empresa
	movimientos  []*entity.Movimiento
	historial    []*entity.HistorialEquipo
	custodias    []custodiaAplicada
	encolados    []encolado
	notifEnviada []string
	fallaEnvio   error
	actaGenerada bool
	actaGuardada []byte
}

type custodiaAplicada struct {
	equipoID       string
	estadoFisicoID int
	disponible     bool
	observaciones  string
	modificadoPor  string
}

type encolado struct {
	movimientoID string
	destino      string
	adjuntoPath  string
}

func nuevoAlmacen() *almacen {
	return &almacen{equipos: make(map[string]*entity.Equipo)}
}

type fakeTxRunner struct{ st *almacen }

func (r *fakeTxRunner) RunEquipo(ctx context.Context, fn func(
	repository.EquipoRepository, repository.SecuenciaRepository, repository.HistorialRepository) error) error {
	return errors.New("no usado en estas pruebas")
}

func (r *fakeTxRunner) RunMovimiento(ctx context.Context, fn func(
	equipoRepo repository.EquipoRepository,
	movRepo repository.MovimientoRepository,
	histRepo repository.HistorialRepository,
	notifRepo repository.NotificacionRepository,
) error) error {
	movimientos := len(r.st.movimientos)
	historial := len(r.st.historial)
	custodias := len(r.st.custodias)
	encolados := len(r.st.encolados)
	equipos := make(map[string]entity.Equipo, len(r.st.equipos))
	for id, e := range r.st.equipos {
		equipos[id] = *e
	}
	err := fn(&fakeEquipoRepo{st: r.st}, &fakeMovRepo{st: r.st}, &fakeHistRepo{st: r.st}, &fakeNotifRepo{})
	if err != nil {
		// Rollback: restaurar el estado previo al callback.
		r.st.movimientos = r.st.movimientos[:movimientos]
		r.st.historial = r.st.historial[:historial]
		r.st.custodias = r.st.custodias[:custodias]
		r.st.encolados = r.st.encolados[:encolados]
		for id, e := range equipos {
			copia := e
			r.st.equipos[id] = &copia
		}
		return err
	}
	return nil
}

type fakeEquipoRepo struct{ st *almacen }

func (f *fakeEquipoRepo) Create(e *entity.Equipo) error { return nil }
func (f *fakeEquipoRepo) GetByID(id string) (*entity.Equipo, error) {
	return f.st.equipos[id], nil
}
func (f *fakeEquipoRepo) GetBySerie(string) (*entity.Equipo, error)               { return nil, nil }
func (f *fakeEquipoRepo) List(repository.FiltroEquipos) ([]*entity.Equipo, error) { return nil, nil }
func (f *fakeEquipoRepo) Update(*entity.Equipo) error                             { return nil }

func (f *fakeEquipoRepo) ClaimParaEntrega(id string) (*entity.Equipo, error) {
	e := f.st.equipos[id]
	if e == nil || !e.Disponible {
		return nil, nil
	}
	e.Disponible = false
	return e, nil
}

func (f *fakeEquipoRepo) UpdateCustodia(id string, estadoFisicoID int, disponible bool,
	observaciones *string, modificadoPor string) error {
	e := f.st.equipos[id]
	if e == nil {
		return domain.ErrNotFound
	}
	e.EstadoFisicoID = estadoFisicoID
	e.Disponible = disponible
	obs := ""
	if observaciones != nil {
		obs = *observaciones
	}
	f.st.custodias = append(f.st.custodias, custodiaAplicada{
		equipoID:       id,
		estadoFisicoID: estadoFisicoID,
		disponible:     disponible,
		observaciones:  obs,
		modificadoPor:  modificadoPor,
	})
	return nil
}

func (f *fakeEquipoRepo) ListMarcas() ([]string, error)                      { return nil, nil }
func (f *fakeEquipoRepo) ListEstadosFisicos() ([]entity.EstadoFisico, error) { return nil, nil }

type fakeColaboradorRepo struct{ st *almacen }

func (f *fakeColaboradorRepo) Create(*entity.Colaborador) error { return nil }
func (f *fakeColaboradorRepo) GetByID(id string) (*entity.Colaborador, error) {
	if f.st.colaborador == nil || f.st.colaborador.ID != id {
		return nil, nil
	}
	return f.st.colaborador, nil
}
func (f *fakeColaboradorRepo) GetByDNI(string) (*entity.Colaborador, error) { return nil, nil }
func (f *fakeColaboradorRepo) List(bool) ([]*entity.Colaborador, error)     { return nil, nil }
func (f *fakeColaboradorRepo) Update(*entity.Colaborador) error             { return nil }
func (f *fakeColaboradorRepo) SetEstado(string, bool, string) error         { return nil }

type fakeEmpresaRepo struct{ st *almacen }

func (f *fakeEmpresaRepo) Create(*entity.Empresa) error { return nil }
func (f *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	return f.st.empresa, nil
}
func (f *fakeEmpresaRepo) GetByRUC(string) (*entity.Empresa, error) { return nil, nil }
func (f *fakeEmpresaRepo) List(bool) ([]*entity.Empresa, error)     { return nil, nil }
func (f *fakeEmpresaRepo) Update(*entity.Empresa) error             { return nil }
func (f *fakeEmpresaRepo) SetEstado(string, bool, string) error     { return nil }

type fakeMovRepo struct{ st *almacen }

func (f *fakeMovRepo) Create(m *entity.Movimiento) error {
	f.st.movimientos = append(f.st.movimientos, m)
	return nil
}
func (f *fakeMovRepo) GetByID(id string) (*entity.Movimiento, error) {
	for _, m := range f.st.movimientos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (f *fakeMovRepo) ListLedger(context.Context, repository.FiltroMovimientos) ([]dto.MovimientoLedgerRow, error) {
	return nil, nil
}
func (f *fakeMovRepo) SetCorreoEnviado(string, bool) error { return nil }
func (f *fakeMovRepo) SetFirmado(string, string) error     { return nil }
func (f *fakeMovRepo) InvalidarFirma(string) error         { return nil }

type fakeHistRepo struct{ st *almacen }

func (f *fakeHistRepo) Create(h *entity.HistorialEquipo) error {
	f.st.historial = append(f.st.historial, h)
	return nil
}
func (f *fakeHistRepo) ListByEquipo(string) ([]*entity.HistorialEquipo, error) { return nil, nil }

type fakeNotifRepo struct{}

func (f *fakeNotifRepo) Create(*entity.Notificacion) error                       { return nil }
func (f *fakeNotifRepo) GetByID(string) (*entity.Notificacion, error)            { return nil, nil }
func (f *fakeNotifRepo) GetByMovimiento(string) (*entity.Notificacion, error)    { return nil, nil }
func (f *fakeNotifRepo) ListPendientes(int, int) ([]*entity.Notificacion, error) { return nil, nil }
func (f *fakeNotifRepo) MarcarEnviada(string) error                              { return nil }
func (f *fakeNotifRepo) MarcarFallida(string, string) error                      { return nil }

type fakeActas struct{ st *almacen }

func (f *fakeActas) GenerarActa(ctx context.Context, mov *entity.Movimiento, equipo *entity.Equipo,
	colaborador *entity.Colaborador, empresa *entity.Empresa) ([]byte, error) {
	f.st.actaGenerada = true
	return []byte("%PDF-fake"), nil
}

type fakeFiles struct{ st *almacen }

func (f *fakeFiles) SaveBytes(subdir, ext string, data []byte) (string, error) {
	f.st.actaGuardada = data
	return "/uploads/" + subdir + "/acta" + ext, nil
}
func (f *fakeFiles) PublicURL(path string) string { return path }

type fakeNotificador struct{ st *almacen }

func (f *fakeNotificador) Encolar(notifRepo repository.NotificacionRepository, mov *entity.Movimiento,
	equipo *entity.Equipo, colaborador *entity.Colaborador, destino, adjuntoPath string) (string, error) {
	f.st.encolados = append(f.st.encolados, encolado{
		movimientoID: mov.ID,
		destino:      destino,
		adjuntoPath:  adjuntoPath,
	})
	return "notif-" + mov.ID, nil
}

func (f *fakeNotificador) Enviar(ctx context.Context, notificacionID string) error {
	if f.st.fallaEnvio != nil {
		return f.st.fallaEnvio
	}
	f.st.notifEnviada = append(f.st.notifEnviada, notificacionID)
	return nil
}

func nuevoUseCase(st *almacen) *UseCase {
	return NewUseCase(
		&fakeTxRunner{st: st},
		&fakeEquipoRepo{st: st},
		&fakeColaboradorRepo{st: st},
		&fakeEmpresaRepo{st: st},
		&fakeMovRepo{st: st},
		&fakeActas{st: st},
		&fakeFiles{st: st},
		&fakeNotificador{st: st},
	)
}

func equipoDisponible() *entity.Equipo {
	return &entity.Equipo{
		ID:                "eq-1",
		EmpresaID:         "emp-1",
		CodigoPatrimonial: "EQP-0001",
		Marca:             "Lenovo",
		Modelo:            "ThinkPad T14",
		NumeroSerie:       "SN-001",
		EsPropio:          true,
		EstadoFisicoID:    entity.EstadoOperativo,
		Disponible:        true,
	}
}

func colaboradorActivo() *entity.Colaborador {
	return &entity.Colaborador{
		ID:        "col-1",
		EmpresaID: "emp-1",
		DNI:       "45678901",
		Nombres:   "María",
		Apellidos: "Quispe",
		Email:     "maria.quispe@velatec.pe",
		Genero:    "f",
		Estado:    true,
	}
}

func TestRegistrarEntrega_HappyPath(t *testing.T) {
	st := nuevoAlmacen()
	st.equipos["eq-1"] = equipoDisponible()
	st.colaborador = colaboradorActivo()
	uc := nuevoUseCase(st)

	resp, err := uc.RegistrarEntrega(context.Background(), EntregaInput{
		EquipoID:        "eq-1",
		ColaboradorID:   "col-1",
		IncluyeCargador: true,
		Observaciones:   "con mochila",
		UsuarioID:       "usr-1",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.MovimientoEntrega, resp.Tipo)
	assert.Empty(t, resp.Warning)
	assert.Nil(t, resp.CorreoEnviado) // sin correo no se reporta el campo

	// El reclamo dejó el equipo no disponible y se escribieron movimiento e historial.
	assert.False(t, st.equipos["eq-1"].Disponible)
	require.Len(t, st.movimientos, 1)
	assert.True(t, st.movimientos[0].IncluyeCargador)
	require.Len(t, st.historial, 1)
	assert.Equal(t, entity.AccionEntrega, st.historial[0].Accion)
	assert.Contains(t, st.historial[0].Descripcion, "EQP-0001")
	assert.Contains(t, st.historial[0].Descripcion, "María Quispe")
	assert.Empty(t, st.encolados)
}

func TestRegistrarEntrega_EquipoYaAsignado(t *testing.T) {
	st := nuevoAlmacen()
	eq := equipoDisponible()
	eq.Disponible = false
	st.equipos["eq-1"] = eq
	st.colaborador = colaboradorActivo()
	uc := nuevoUseCase(st)

	resp, err := uc.RegistrarEntrega(context.Background(), EntregaInput{
		EquipoID:      "eq-1",
		ColaboradorID: "col-1",
		UsuarioID:     "usr-1",
	})

	assert.ErrorIs(t, err, domain.ErrEquipoNoDisponible)
	assert.Nil(t, resp)
	assert.Empty(t, st.movimientos)
	assert.Empty(t, st.historial)
}

func TestRegistrarEntrega_ReclamoConcurrentePerdido(t *testing.T) {
	// El chequeo previo pasa pero el reclamo condicional dentro de la tx falla
	// (otro proceso asignó el equipo primero): nada queda persistido.
	st := nuevoAlmacen()
	eq := equipoDisponible()
	st.equipos["eq-1"] = eq
	st.colaborador = colaboradorActivo()

	perdedor := &fakeTxRunner{st: st}
	uc := NewUseCase(
		txRunnerQueRoba{inner: perdedor, st: st},
		&fakeEquipoRepo{st: st},
		&fakeColaboradorRepo{st: st},
		&fakeEmpresaRepo{st: st},
		&fakeMovRepo{st: st},
		&fakeActas{st: st},
		&fakeFiles{st: st},
		&fakeNotificador{st: st},
	)

	resp, err := uc.RegistrarEntrega(context.Background(), EntregaInput{
		EquipoID:      "eq-1",
		ColaboradorID: "col-1",
		UsuarioID:     "usr-1",
	})

	assert.ErrorIs(t, err, domain.ErrEquipoNoDisponible)
	assert.Nil(t, resp)
	assert.Empty(t, st.movimientos)
	assert.Empty(t, st.historial)
}

// txRunnerQueRoba marca el equipo como asignado justo antes de abrir la
// transacción, simulando una entrega concurrente que ganó la carrera.
type txRunnerQueRoba struct {
	inner *fakeTxRunner
	st    *almacen
}

func (r txRunnerQueRoba) RunEquipo(ctx context.Context, fn func(
	repository.EquipoRepository, repository.SecuenciaRepository, repository.HistorialRepository) error) error {
	return r.inner.RunEquipo(ctx, fn)
}

func (r txRunnerQueRoba) RunMovimiento(ctx context.Context, fn func(
	repository.EquipoRepository, repository.MovimientoRepository,
	repository.HistorialRepository, repository.NotificacionRepository) error) error {
	r.st.equipos["eq-1"].Disponible = false
	return r.inner.RunMovimiento(ctx, fn)
}

func TestRegistrarEntrega_ColaboradorInactivo(t *testing.T) {
	st := nuevoAlmacen()
	st.equipos["eq-1"] = equipoDisponible()
	col := colaboradorActivo()
	col.Estado = false
	st.colaborador = col
	uc := nuevoUseCase(st)

	_, err := uc.RegistrarEntrega(context.Background(), EntregaInput{
		EquipoID:      "eq-1",
		ColaboradorID: "col-1",
		UsuarioID:     "usr-1",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, st.movimientos)
}

func TestRegistrarEntrega_ConCorreo(t *testing.T) {
	st := nuevoAlmacen()
	st.equipos["eq-1"] = equipoDisponible()
	st.colaborador = colaboradorActivo()
	st.empresa = &entity.Empresa{ID: "emp-1", RazonSocial: "Velatec SAC", RUC: "20123456789"}
	uc := nuevoUseCase(st)

	resp, err := uc.RegistrarEntrega(context.Background(), EntregaInput{
		EquipoID:      "eq-1",
		ColaboradorID: "col-1",
		UsuarioID:     "usr-1",
		ConCorreo:     true,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.CorreoEnviado)
	assert.True(t, *resp.CorreoEnviado)
	assert.Empty(t, resp.Warning)

	// El acta se generó (no la subió el cliente) y el outbox quedó encolado con
	// el email del colaborador como destino por defecto.
	assert.True(t, st.actaGenerada)
	require.Len(t, st.encolados, 1)
	assert.Equal(t, "maria.quispe@velatec.pe", st.encolados[0].destino)
	assert.NotEmpty(t, st.encolados[0].adjuntoPath)
	require.Len(t, st.notifEnviada, 1)
}

func TestRegistrarEntrega_ConCorreoActaSubida(t *testing.T) {
	st := nuevoAlmacen()
	st.equipos["eq-1"] = equipoDisponible()
	st.colaborador = colaboradorActivo()
	uc := nuevoUseCase(st)

	subida := []byte("%PDF-subida-por-cliente")
	_, err := uc.RegistrarEntrega(context.Background(), EntregaInput{
		EquipoID:      "eq-1",
		ColaboradorID: "col-1",
		UsuarioID:     "usr-1",
		ConCorreo:     true,
		CorreoDestino: "jefatura@velatec.pe",
		ActaPDF:       subida,
	})

	require.NoError(t, err)
	assert.False(t, st.actaGenerada) // el PDF subido tiene prioridad
	assert.Equal(t, subida, st.actaGuardada)
	require.Len(t, st.encolados, 1)
	assert.Equal(t, "jefatura@velatec.pe", st.encolados[0].destino)
}

func TestRegistrarEntrega_FalloDeCorreoNoRevierte(t *testing.T) {
	st := nuevoAlmacen()
	st.equipos["eq-1"] = equipoDisponible()
	st.colaborador = colaboradorActivo()
	st.fallaEnvio = errors.New("smtp: connection refused")
	uc := nuevoUseCase(st)

	resp, err := uc.RegistrarEntrega(context.Background(), EntregaInput{
		EquipoID:      "eq-1",
		ColaboradorID: "col-1",
		UsuarioID:     "usr-1",
		ConCorreo:     true,
	})

	// El movimiento queda registrado; el fallo SMTP solo se reporta como warning.
	require.NoError(t, err)
	require.NotNil(t, resp.CorreoEnviado)
	assert.False(t, *resp.CorreoEnviado)
	assert.Contains(t, resp.Warning, "el correo no pudo enviarse")
	require.Len(t, st.movimientos, 1)
	require.Len(t, st.encolados, 1)
}

func TestRegistrarDevolucion_EquipoOperativo(t *testing.T) {
	st := nuevoAlmacen()
	eq := equipoDisponible()
	eq.Disponible = false // asignado
	st.equipos["eq-1"] = eq
	st.colaborador = colaboradorActivo()
	uc := nuevoUseCase(st)

	resp, err := uc.RegistrarDevolucion(context.Background(), DevolucionInput{
		EquipoID:       "eq-1",
		ColaboradorID:  "col-1",
		Motivo:         "cese",
		EstadoFisicoID: entity.EstadoOperativo,
		EstadoFinal:    "Operativo",
		Observaciones:  "sin daños",
		UsuarioID:      "usr-1",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.MovimientoDevolucion, resp.Tipo)

	// El movimiento guarda el snapshot del estado reportado.
	require.Len(t, st.movimientos, 1)
	require.NotNil(t, st.movimientos[0].EstadoEquipoID)
	assert.Equal(t, entity.EstadoOperativo, *st.movimientos[0].EstadoEquipoID)
	assert.Equal(t, "cese", st.movimientos[0].Motivo)

	// Operativo: vuelve disponible.
	require.Len(t, st.custodias, 1)
	assert.True(t, st.custodias[0].disponible)
	assert.Equal(t, entity.EstadoOperativo, st.custodias[0].estadoFisicoID)
	assert.Equal(t, "sin daños", st.custodias[0].observaciones)

	require.Len(t, st.historial, 1)
	assert.Equal(t, entity.AccionDevolucion, st.historial[0].Accion)
	assert.Contains(t, st.historial[0].Descripcion, "Motivo: cese")
	assert.Contains(t, st.historial[0].Descripcion, "Estado final: Operativo")
}

func TestRegistrarDevolucion_EquipoAveriadoNoQuedaDisponible(t *testing.T) {
	st := nuevoAlmacen()
	eq := equipoDisponible()
	eq.Disponible = false
	st.equipos["eq-1"] = eq
	st.colaborador = colaboradorActivo()
	uc := nuevoUseCase(st)

	_, err := uc.RegistrarDevolucion(context.Background(), DevolucionInput{
		EquipoID:       "eq-1",
		ColaboradorID:  "col-1",
		Motivo:         "pantalla rota",
		EstadoFisicoID: entity.EstadoAveriado,
		UsuarioID:      "usr-1",
	})

	require.NoError(t, err)
	require.Len(t, st.custodias, 1)
	assert.False(t, st.custodias[0].disponible)
	assert.Equal(t, entity.EstadoAveriado, st.custodias[0].estadoFisicoID)
	assert.False(t, st.equipos["eq-1"].Disponible)
}

func TestRegistrarDevolucion_EquipoInexistente(t *testing.T) {
	st := nuevoAlmacen()
	st.colaborador = colaboradorActivo()
	uc := nuevoUseCase(st)

	_, err := uc.RegistrarDevolucion(context.Background(), DevolucionInput{
		EquipoID:       "no-existe",
		ColaboradorID:  "col-1",
		EstadoFisicoID: entity.EstadoOperativo,
		UsuarioID:      "usr-1",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerarActa_MovimientoInexistente(t *testing.T) {
	st := nuevoAlmacen()
	uc := nuevoUseCase(st)

	_, err := uc.GenerarActa(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerarActa_CargaRelaciones(t *testing.T) {
	st := nuevoAlmacen()
	st.equipos["eq-1"] = equipoDisponible()
	st.colaborador = colaboradorActivo()
	st.movimientos = []*entity.Movimiento{{
		ID:            "mov-1",
		Tipo:          entity.MovimientoEntrega,
		EquipoID:      "eq-1",
		ColaboradorID: "col-1",
		Fecha:         time.Now(),
	}}
	uc := nuevoUseCase(st)

	data, err := uc.GenerarActa(context.Background(), "mov-1")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, st.actaGenerada)
}
