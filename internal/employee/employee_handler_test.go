package employee_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-staff/internal/employee"
	employeeerrors "go-staff/internal/employee/errors"
	"go-staff/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	GetAllFn  func(ctx context.Context) ([]employee.Employee, error)
	GetByIDFn func(ctx context.Context, id string) (employee.Employee, error)
	UpdateFn  func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	DeleteFn  func(ctx context.Context, id string) (employee.Employee, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) (employee.Employee, error) {
	return f.DeleteFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	return gin.New()
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setupRouter()
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
				assert.Equal(t, "John Doe", *req.Name)
				assert.Equal(t, float64(30), req.Age)
				return employee.Employee{ID: 1, Name: *req.Name, Age: 30}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"John Doe","age":30}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), "Employee created successfully")
		assert.Contains(t, w.Body.String(), "John Doe")
	})

	t.Run("missing name fails binding with field message", func(t *testing.T) {
		setupRouter()
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"age":30}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), "name is required")
	})

	t.Run("duplicate id returns conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
				return employee.Employee{}, employeeerrors.DuplicateEmployeeID(5)
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"id":5,"name":"John Doe","age":30}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Employee with ID 5 already exists")
	})

	t.Run("unclassified error is an opaque 500", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
				return employee.Employee{}, errors.New("store corrupted")
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"John Doe","age":30}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
		assert.NotContains(t, w.Body.String(), "store corrupted")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("success with count", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.Employee, error) {
				return []employee.Employee{
					{ID: 1, Name: "John Doe", Age: 30},
					{ID: 2, Name: "Jane Doe", Age: 40},
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":2`)
		assert.Contains(t, w.Body.String(), "John Doe")
		assert.Contains(t, w.Body.String(), "Jane Doe")
	})

	t.Run("empty store still lists", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.Employee, error) {
				return []employee.Employee{}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":0`)
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
				assert.Equal(t, "1", id)
				return employee.Employee{ID: 1, Name: "John Doe", Age: 30}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees/:id", h.GetById)

		req := httptest.NewRequest(http.MethodGet, "/employees/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee retrieved successfully")
	})

	t.Run("bad id format", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
				return employee.Employee{}, employeeerrors.ErrInvalidIDFormat
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees/:id", h.GetById)

		req := httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid ID format. ID must be a number.")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
				return employee.Employee{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees/:id", h.GetById)

		req := httptest.NewRequest(http.MethodGet, "/employees/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee not found")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
				assert.Equal(t, "1", id)
				return employee.Employee{ID: 1, Name: *req.Name, Age: 41}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Robert","age":41}`
		req := httptest.NewRequest(http.MethodPut, "/employees/1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "1"}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee updated successfully")
		assert.Contains(t, w.Body.String(), "Robert")
	})

	t.Run("binding failure", func(t *testing.T) {
		setupRouter()
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPut, "/employees/1", strings.NewReader(`{"age":41}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "1"}}

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name is required")
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success returns the removed record", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) (employee.Employee, error) {
				return employee.Employee{ID: 1, Name: "John Doe", Age: 30}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.DELETE("/employees/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/employees/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee deleted successfully")
		assert.Contains(t, w.Body.String(), "John Doe")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) (employee.Employee, error) {
				return employee.Employee{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.DELETE("/employees/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/employees/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
