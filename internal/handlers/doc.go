// Package handlers implements the HTTP API layer of the academy API.
//
// Handlers parse and validate requests, delegate to the services layer and
// convert models to the api/v1 types. They never write error responses
// themselves: every endpoint returns an error and one wrapper maps it.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│  auth.Authenticator  →  authz.RequireAdmin (admin routes only)  │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request binding and validation                               │
//	│  - List-query parsing (pkg/listquery)                           │
//	│  - Model-to-API conversion                                      │
//	│  - wrap: error kind → HTTP status                               │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  Content │ Progress │ Subscription │ Admin                      │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Error Mapping
//
//	┌────────────────────────┬────────┬──────────────────────────────┐
//	│ Error kind             │ Status │ Body                         │
//	├────────────────────────┼────────┼──────────────────────────────┤
//	│ ValidationError        │ 400    │ message and per-field errors │
//	│ UnauthorizedError      │ 401    │ "unauthorized"               │
//	│ ForbiddenError         │ 403    │ "forbidden"                  │
//	│ ResourceNotFoundError  │ 404    │ message                      │
//	│ ConflictError          │ 409    │ message                      │
//	│ anything else          │ 500    │ "internal server error"      │
//	└────────────────────────┴────────┴──────────────────────────────┘
//
// Internal errors are logged with the request id and never returned.
//
// # API Endpoints
//
// Admin endpoints, for each entity in courses, units, chapters, lessons and
// subscriptions (resource.go):
//
//	┌────────┬────────────────────────┬──────────────────────────────────┐
//	│ Method │ Endpoint               │ Description                      │
//	├────────┼────────────────────────┼──────────────────────────────────┤
//	│ GET    │ /admin/{entity}        │ List (Content-Range protocol)    │
//	│ GET    │ /admin/{entity}/export │ Same list as an XLSX attachment  │
//	│ GET    │ /admin/{entity}/{id}   │ Get one row                      │
//	│ POST   │ /admin/{entity}        │ Create, 201                      │
//	│ PUT    │ /admin/{entity}/{id}   │ Replace                          │
//	│ DELETE │ /admin/{entity}/{id}   │ Delete, returns the removed row  │
//	└────────┴────────────────────────┴──────────────────────────────────┘
//
// Admin management (admins.go):
//
//	┌────────┬────────────────────────┬──────────────────────────────────┐
//	│ GET    │ /admin/admins          │ List admins                      │
//	│ POST   │ /admin/admins          │ Grant admin to {"userId"}        │
//	│ DELETE │ /admin/admins/{userId} │ Revoke, 204                      │
//	└────────┴────────────────────────┴──────────────────────────────────┘
//
// Learner endpoints (learner.go):
//
//	┌────────┬────────────────────────────┬────────────────────────────────┐
//	│ GET    │ /courses                   │ Public catalogue               │
//	│ GET    │ /me/progress               │ Score and completed lessons    │
//	│ PUT    │ /me/progress/course        │ Select the active course       │
//	│ POST   │ /me/lessons/{id}/complete  │ Complete or practice a lesson  │
//	│ POST   │ /me/lessons/{id}/mistake   │ Lose a heart                   │
//	│ POST   │ /me/hearts/refill          │ Trade points for hearts        │
//	│ GET    │ /me/subscription           │ Billing status                 │
//	│ GET    │ /health                    │ Database liveness              │
//	└────────┴────────────────────────────┴────────────────────────────────┘
//
// # List Endpoints
//
// Every list endpoint reads range, sort, filter and fetchAll through the
// configured listquery.Parser and answers with a bare JSON array plus the
// Content-Range and X-Total-Count headers. Filter keys are the API field
// names of the entity ("courseId", "title", ...); "q" searches the title.
package handlers
