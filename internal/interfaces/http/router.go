package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velatec/activos-api/internal/application/analytics"
	"github.com/velatec/activos-api/internal/application/auth"
	"github.com/velatec/activos-api/internal/application/custody"
	"github.com/velatec/activos-api/internal/application/reports"
	"github.com/velatec/activos-api/internal/application/usecase"
	"github.com/velatec/activos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	EmpresaUC     *usecase.EmpresaUseCase
	ColaboradorUC *usecase.ColaboradorUseCase
	ProveedorUC   *usecase.ProveedorUseCase
	EquipoUC      *usecase.EquipoUseCase
	ServicioUC    *usecase.ServicioUseCase
	CustodyUC     *custody.UseCase
	ExportUC      *reports.ExportUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Login es la única ruta pública; todo lo
// demás requiere Bearer Token, y las escrituras requieren rol admin o soporte.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	escribir := RequireWriter()
	soloAdmin := RequireRole(entity.RolAdmin)

	// Auth (login público, el resto protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protectedAuth := protected.Group("/auth")
	protectedAuth.Post("/register", soloAdmin, authHandler.Register)
	protectedAuth.Get("/perfil", authHandler.Perfil)
	protectedAuth.Put("/perfil", authHandler.UpdatePerfil)
	protectedAuth.Put("/password", authHandler.UpdatePassword)

	usuarios := protected.Group("/usuarios", soloAdmin)
	usuarios.Get("/", authHandler.ListUsers)
	usuarios.Put("/:id/estado", authHandler.SetUserStatus)
	usuarios.Put("/:id/password", authHandler.ResetUserPassword)

	// Empresas
	empresas := protected.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Post("/", escribir, empresaHandler.Create)
	empresas.Get("/", empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", escribir, empresaHandler.Update)
	empresas.Put("/:id/estado", escribir, empresaHandler.SetEstado)

	// Colaboradores
	colaboradores := protected.Group("/colaboradores")
	colaboradorHandler := NewColaboradorHandler(deps.ColaboradorUC)
	colaboradores.Post("/", escribir, colaboradorHandler.Create)
	colaboradores.Get("/", colaboradorHandler.List)
	colaboradores.Get("/:id", colaboradorHandler.GetByID)
	colaboradores.Put("/:id", escribir, colaboradorHandler.Update)
	colaboradores.Put("/:id/estado", escribir, colaboradorHandler.SetEstado)

	// Proveedores
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", escribir, proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", escribir, proveedorHandler.Update)
	proveedores.Put("/:id/estado", escribir, proveedorHandler.SetEstado)

	// Equipos (las rutas fijas van antes de /:id)
	equipos := protected.Group("/equipos")
	equipoHandler := NewEquipoHandler(deps.EquipoUC)
	equipos.Post("/", escribir, equipoHandler.Create)
	equipos.Get("/", equipoHandler.List)
	equipos.Get("/marcas", equipoHandler.ListMarcas)
	equipos.Get("/estados", equipoHandler.ListEstados)
	equipos.Get("/:id", equipoHandler.GetByID)
	equipos.Put("/:id", escribir, equipoHandler.Update)
	equipos.Put("/:id/disponibilidad", escribir, equipoHandler.SetDisponibilidad)
	equipos.Get("/:id/historial", equipoHandler.Historial)

	// Movimientos de custodia
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.CustodyUC, deps.ExportUC)
	movimientos.Post("/entrega", escribir, movimientoHandler.RegistrarEntrega)
	movimientos.Post("/entrega-con-correo", escribir, movimientoHandler.RegistrarEntregaConCorreo)
	movimientos.Post("/devolucion", escribir, movimientoHandler.RegistrarDevolucion)
	movimientos.Post("/devolucion-con-correo", escribir, movimientoHandler.RegistrarDevolucionConCorreo)
	movimientos.Post("/reenviar-correo", escribir, movimientoHandler.ReenviarCorreo)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/export", movimientoHandler.ExportXLSX)
	movimientos.Get("/:id/acta", movimientoHandler.Acta)
	movimientos.Post("/:id/subir-firmado", escribir, movimientoHandler.SubirFirmado)
	movimientos.Put("/:id/invalidar", escribir, movimientoHandler.InvalidarFirma)

	// Servicios
	servicios := protected.Group("/servicios")
	servicioHandler := NewServicioHandler(deps.ServicioUC)
	servicios.Post("/", escribir, servicioHandler.Create)
	servicios.Get("/", servicioHandler.List)
	servicios.Get("/:id", servicioHandler.GetByID)
	servicios.Put("/:id", escribir, servicioHandler.Update)
	servicios.Put("/:id/estado", escribir, servicioHandler.SetEstado)
	servicios.Post("/:id/pagos", escribir, servicioHandler.CreatePago)
	servicios.Get("/:id/pagos", servicioHandler.ListPagos)
	servicios.Delete("/:id/pagos/:pagoId", escribir, servicioHandler.AnularPago)
	servicios.Get("/:id/auditoria", servicioHandler.ListAuditoria)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
