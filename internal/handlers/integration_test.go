package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-jordan/barberia-api/internal/config"
	dbpkg "github.com/barberia-jordan/barberia-api/internal/db"
	"github.com/barberia-jordan/barberia-api/internal/models"
	"github.com/barberia-jordan/barberia-api/internal/routes"
)

const testSecret = "test-secret-handlers"

func newTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := dbpkg.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{SecretKey: testSecret, ServerPort: "0"}

	r := gin.New()
	routes.RegisterRoutes(r, gdb, cfg)
	return r, gdb
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func registrar(t *testing.T, r *gin.Engine, email, nombre, rol string) string {
	t.Helper()

	payload := gin.H{"email": email, "password": "pw123456", "nombre": nombre}
	if rol != "" {
		payload["rol"] = rol
	}

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/registro", "", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("registro %s: expected 201, got %d: %s", email, w.Code, w.Body.String())
	}

	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatalf("registro %s: no token in response", email)
	}
	return tok
}

// ------------------------------
// AUTH
// ------------------------------

func TestRegistroMeBarberoFlow(t *testing.T) {
	r, _ := newTestAPI(t)

	// Registro sin rol → barbero.
	w, body := doJSON(t, r, http.MethodPost, "/api/auth/registro", "", gin.H{
		"email": "a@x.com", "password": "pw123456", "nombre": "A",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if body["mensaje"] != "Usuario registrado exitosamente" {
		t.Fatalf("unexpected mensaje: %v", body["mensaje"])
	}
	tok := body["token"].(string)

	// El token recién emitido resuelve la identidad.
	w, me := doJSON(t, r, http.MethodGet, "/api/auth/me", tok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	if me["rol"] != models.RolBarbero {
		t.Fatalf("me: expected rol barbero, got %v", me["rol"])
	}
	if me["email"] != "a@x.com" || me["estado"] != models.EstadoActivo {
		t.Fatalf("me: unexpected payload: %v", me)
	}

	// Un barbero no puede crear barberos.
	w, body = doJSON(t, r, http.MethodPost, "/api/barberos", tok, gin.H{"nombre": "Luis"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if body["error"] != "Acceso denegado. Se requiere rol de administrador" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestRegistro_CamposFaltantes(t *testing.T) {
	r, _ := newTestAPI(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/registro", "", gin.H{"email": "a@x.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body["error"] != "Email, password y nombre son requeridos" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestRegistro_EmailDuplicado(t *testing.T) {
	r, gdb := newTestAPI(t)

	registrar(t, r, "a@x.com", "A", "")

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/registro", "", gin.H{
		"email": "a@x.com", "password": "otra", "nombre": "B",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if body["error"] != "El email ya está registrado" {
		t.Fatalf("unexpected error: %v", body["error"])
	}

	var count int64
	gdb.Model(&models.Usuario{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 usuario, got %d", count)
	}
}

func TestLogin(t *testing.T) {
	r, _ := newTestAPI(t)
	registrar(t, r, "a@x.com", "A", "")

	// Password incorrecto: 401 y sin token.
	w, body := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@x.com", "password": "incorrecta",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body["error"] != "Email o contraseña incorrectos" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
	if _, ok := body["token"]; ok {
		t.Fatalf("token issued on failed login")
	}

	// Email desconocido: misma respuesta.
	w, body = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "nadie@x.com", "password": "pw123456",
	})
	if w.Code != http.StatusUnauthorized || body["error"] != "Email o contraseña incorrectos" {
		t.Fatalf("unknown email: got %d %v", w.Code, body["error"])
	}

	// Login correcto.
	w, body = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@x.com", "password": "pw123456",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["mensaje"] != "Login exitoso" || body["token"] == "" {
		t.Fatalf("unexpected login payload: %v", body)
	}
}

func TestLogout_NoInvalidaElToken(t *testing.T) {
	r, _ := newTestAPI(t)
	tok := registrar(t, r, "a@x.com", "A", "")

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/logout", tok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}
	if body["mensaje"] != "Sesión cerrada" {
		t.Fatalf("unexpected mensaje: %v", body["mensaje"])
	}

	// Sesiones sin estado: el token sigue sirviendo hasta expirar.
	w, _ = doJSON(t, r, http.MethodGet, "/api/auth/me", tok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("token rejected after logout: %d", w.Code)
	}
}

// ------------------------------
// BARBEROS / SERVICIOS (rol admin)
// ------------------------------

func TestBarberosCRUD(t *testing.T) {
	r, _ := newTestAPI(t)
	adminTok := registrar(t, r, "admin@x.com", "Admin", models.RolAdmin)

	// Nombre requerido.
	w, body := doJSON(t, r, http.MethodPost, "/api/barberos", adminTok, gin.H{"email": "x@y.com"})
	if w.Code != http.StatusBadRequest || body["error"] != "El nombre es requerido" {
		t.Fatalf("missing nombre: got %d %v", w.Code, body["error"])
	}

	w, body = doJSON(t, r, http.MethodPost, "/api/barberos", adminTok, gin.H{
		"nombre": "Juan Carlos", "telefono": "1234567890", "comision": 25.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if body["comision"] != 25.0 || body["estado"] != models.EstadoActivo {
		t.Fatalf("unexpected barbero: %v", body)
	}
	id := int(body["id"].(float64))

	// Lectura con token de barbero (no admin).
	barberoTok := registrar(t, r, "b@x.com", "B", "")
	w, _ = doJSON(t, r, http.MethodGet, "/api/barberos", barberoTok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list as barbero: expected 200, got %d", w.Code)
	}

	// Update parcial.
	w, body = doJSON(t, r, http.MethodPut, "/api/barberos/"+itoa(id), adminTok, gin.H{"estado": "inactivo"})
	if w.Code != http.StatusOK || body["estado"] != "inactivo" {
		t.Fatalf("update: got %d %v", w.Code, body)
	}
	if body["nombre"] != "Juan Carlos" {
		t.Fatalf("partial update touched nombre: %v", body["nombre"])
	}

	// Delete.
	w, body = doJSON(t, r, http.MethodDelete, "/api/barberos/"+itoa(id), adminTok, nil)
	if w.Code != http.StatusOK || body["mensaje"] != "Barbero eliminado correctamente" {
		t.Fatalf("delete: got %d %v", w.Code, body)
	}

	w, body = doJSON(t, r, http.MethodDelete, "/api/barberos/"+itoa(id), adminTok, nil)
	if w.Code != http.StatusNotFound || body["error"] != "Barbero no encontrado" {
		t.Fatalf("delete absent: got %d %v", w.Code, body)
	}
}

func TestServicios_ValidacionYRol(t *testing.T) {
	r, _ := newTestAPI(t)
	adminTok := registrar(t, r, "admin@x.com", "Admin", models.RolAdmin)
	barberoTok := registrar(t, r, "b@x.com", "B", "")

	w, body := doJSON(t, r, http.MethodPost, "/api/servicios", adminTok, gin.H{"nombre": "Corte"})
	if w.Code != http.StatusBadRequest || body["error"] != "Nombre y precio son requeridos" {
		t.Fatalf("missing precio: got %d %v", w.Code, body["error"])
	}

	w, body = doJSON(t, r, http.MethodPost, "/api/servicios", adminTok, gin.H{
		"nombre": "Corte de Cabello", "precio": 15.0, "descripcion": "Corte clásico",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}

	// Mutación con rol barbero: 403 antes de tocar datos.
	w, _ = doJSON(t, r, http.MethodPost, "/api/servicios", barberoTok, gin.H{
		"nombre": "Barba", "precio": 10.0,
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	w, list := doJSONList(t, r, "/api/servicios", barberoTok)
	if w.Code != http.StatusOK || len(list) != 1 {
		t.Fatalf("expected 1 servicio, got %d (status %d)", len(list), w.Code)
	}
}

// ------------------------------
// CLIENTES (solo token)
// ------------------------------

func TestClientesCRUD(t *testing.T) {
	r, _ := newTestAPI(t)
	tok := registrar(t, r, "b@x.com", "B", "")

	w, body := doJSON(t, r, http.MethodPost, "/api/clientes", tok, gin.H{
		"nombre": "Carlos", "telefono": "555123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	if body["email"] != nil {
		t.Fatalf("empty email should serialize as null, got %v", body["email"])
	}
	id := int(body["id"].(float64))

	w, body = doJSON(t, r, http.MethodPut, "/api/clientes/"+itoa(id), tok, gin.H{"email": "carlos@x.com"})
	if w.Code != http.StatusOK || body["email"] != "carlos@x.com" {
		t.Fatalf("update: got %d %v", w.Code, body)
	}

	w, body = doJSON(t, r, http.MethodDelete, "/api/clientes/"+itoa(id), tok, nil)
	if w.Code != http.StatusOK || body["mensaje"] != "Cliente eliminado correctamente" {
		t.Fatalf("delete: got %d %v", w.Code, body)
	}
}

// ------------------------------
// HEALTH
// ------------------------------

func TestHealth(t *testing.T) {
	r, _ := newTestAPI(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK || body["status"] != "API activa" {
		t.Fatalf("health: got %d %v", w.Code, body)
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/health/pool", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pool: expected 200, got %d", w.Code)
	}
	if _, ok := body["pool_size"]; !ok {
		t.Fatalf("pool stats missing: %v", body)
	}
}

// ------------------------------
// helpers
// ------------------------------

func itoa(n int) string {
	return strconv.Itoa(n)
}

func doJSONList(t *testing.T, r *gin.Engine, path, token string) (*httptest.ResponseRecorder, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var list []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	return w, list
}
