// Project Structure Overview
/*
catalog-admin/
├── cmd/
│   ├── server/
│   │   └── main.go
│   └── catalogctl/
│       └── main.go
├── internal/
│   ├── cli/
│   │   └── commands.go
│   ├── config/
│   │   └── config.go
│   ├── models/
│   │   ├── common.go
│   │   ├── product.go
│   │   ├── combination.go
│   │   └── draft.go
│   ├── handlers/
│   │   ├── auth.go
│   │   ├── catalog.go
│   │   ├── wizard.go
│   │   ├── upload.go
│   │   └── errors.go
│   ├── services/
│   │   ├── auth_service.go
│   │   ├── catalog_service.go
│   │   ├── dashboard_service.go
│   │   ├── export_service.go
│   │   ├── pricing.go
│   │   ├── snapshot_service.go
│   │   ├── storage_service.go
│   │   ├── variant_service.go
│   │   ├── wizard.go
│   │   └── wizard_service.go
│   ├── middleware/
│   │   ├── cors.go
│   │   ├── rate_limit.go
│   │   └── logging.go
│   ├── utils/
│   │   ├── logger.go
│   │   ├── numeric.go
│   │   ├── validator.go
│   │   ├── pagination.go
│   │   └── response.go
│   ├── router/
│   │   └── router.go
│   └── tests/
├── public/
│   └── data.json
├── go.mod
└── go.sum
*/

package catalogadmin

// This file shows the project structure. The entry points are cmd/server
// (HTTP API) and cmd/catalogctl (offline tools).
