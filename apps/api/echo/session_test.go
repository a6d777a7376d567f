package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/educonnect/educonnect/core/session"
)

func Test_sessionApi_login(t *testing.T) {
	srv, deps := setupServer(t)
	deps.Session.Restore()

	tests := []httpTest{
		{
			name:     "student ok",
			body:     marchallObj(t, session.Credentials{Email: "alex@student.com", Password: "student123", Role: session.RoleStudent}),
			wantCode: http.StatusOK,
		},
		{
			name:     "admin ok",
			body:     marchallObj(t, session.Credentials{Email: "admin@educonnect.com", Password: "admin123", Role: session.RoleAdmin}),
			wantCode: http.StatusOK,
		},
		{
			name:     "student wrong password",
			body:     marchallObj(t, session.Credentials{Email: "alex@student.com", Password: "lol", Role: session.RoleStudent}),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"invalid student credentials"}`),
		},
		{
			name:     "admin wrong password",
			body:     marchallObj(t, session.Credentials{Email: "admin@educonnect.com", Password: "lol", Role: session.RoleAdmin}),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"invalid admin credentials"}`),
		},
		{
			name:     "missing fields",
			body:     []byte(`{"email":"alex@student.com"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"password":"this field is required","role":"this field is required"}`),
		},
		{
			name:     "bad role",
			body:     marchallObj(t, session.Credentials{Email: "alex@student.com", Password: "student123", Role: "teacher"}),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := deps.Session.Logout(); err != nil {
				t.Fatalf("Logout() failed: %v", err)
			}

			req, rec := newRequest(http.MethodPost, "/login", tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode != http.StatusOK {
				return
			}
			var resp LoginResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshalling response failed: %v", err)
			}
			if !resp.Success {
				t.Error("Success = false, want true")
			}
			if _, ok := deps.Session.Current(); !ok {
				t.Error("session not authenticated after login")
			}
		})
	}
}

func Test_sessionApi_register(t *testing.T) {
	srv, deps := setupServer(t)
	deps.Session.Restore()

	body := []byte(`{"name":"Nadia Kole","email":"nadia@student.com","password":"pass123"}`)
	req, rec := newRequest(http.MethodPost, "/register", body)
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, want 201; body %s", rec.Code, rec.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if resp.User.ID <= 1000 {
		t.Errorf("User.ID = %d, want id above the seeded range", resp.User.ID)
	}
	if resp.User.Role != session.RoleStudent {
		t.Errorf("User.Role = %s, want student", resp.User.Role)
	}

	// registration feeds the admin notification stream
	ntfs, err := deps.NotificationSvc.All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}
	if ntfs[0].Message != "New student registration: Nadia Kole" {
		t.Errorf("notification = %q, want registration message", ntfs[0].Message)
	}

	// weak input is rejected
	if err = deps.Session.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	req, rec = newRequest(http.MethodPost, "/register", []byte(`{"name":"X","email":"not-an-email","password":"123"}`))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", rec.Code)
	}
}

func Test_sessionApi_logout(t *testing.T) {
	srv, deps := setupServer(t)
	loginStudent(t, deps)

	req, rec := newRequest(http.MethodPost, "/logout")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %d, want 204", rec.Code)
	}
	if _, ok := deps.Session.Current(); ok {
		t.Error("session still authenticated after logout")
	}
}

func Test_sessionApi_profile(t *testing.T) {
	srv, deps := setupServer(t)
	ident := loginStudent(t, deps)

	req, rec := newRequest(http.MethodGet, "/profile")
	srv.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, ident)}, rec)
}

func Test_sessionApi_updateProfile(t *testing.T) {
	srv, deps := setupServer(t)
	loginStudent(t, deps)

	body := []byte(`{"name":"Alexander Thompson","bio":"Night owl"}`)
	req, rec := newRequest(http.MethodPut, "/profile", body)
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var ident session.Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &ident); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if ident.Name != "Alexander Thompson" || ident.Bio != "Night owl" {
		t.Errorf("identity = %+v, want merged profile", ident)
	}
	// zero-valued fields survive the merge
	if ident.Email != "alex@student.com" {
		t.Errorf("Email = %s, want untouched", ident.Email)
	}

	// a bad avatar URL is rejected
	req, rec = newRequest(http.MethodPut, "/profile", []byte(`{"avatar":"not-a-url"}`))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", rec.Code)
	}
}
