// Package store implements the data access layer of the academy API.
//
// Storage is a single DuckDB database opened through database/sql. Queries
// are built with squirrel where they depend on request input and kept as
// constants in queries.go otherwise.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│  Table[Course]  Table[Unit]  Table[Chapter]  Table[Lesson]      │
//	│  Table[Subscription]                                            │
//	├────────────────────────────────┬────────────────────────────────┤
//	│         ProgressStore          │          AdminStore            │
//	│  user_progress, lesson_progress│            admins              │
//	├────────────────────────────────┴────────────────────────────────┤
//	│              QueryInterceptor (debug SQL logging)               │
//	├─────────────────────────────────────────────────────────────────┤
//	│                   *sql.DB  or  *sql.Tx                          │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Tables
//
//	┌─────────────────────┬────────────────────────────────────────────┐
//	│  Table              │  Purpose                                   │
//	├─────────────────────┼────────────────────────────────────────────┤
//	│  courses            │  Top of the content hierarchy              │
//	│  units              │  Ordered sections of a course              │
//	│  chapters           │  Ordered sections of a unit                │
//	│  lessons            │  Lesson body and sandbox starter code      │
//	│  user_progress      │  Active course, hearts and points per user │
//	│  lesson_progress    │  Completed lessons per user                │
//	│  subscriptions      │  Billing state per user (one row per user) │
//	│  admins             │  User ids allowed to use the admin API     │
//	│  schema_migrations  │  Migration version tracking                │
//	└─────────────────────┴────────────────────────────────────────────┘
//
// Ids are BIGINT columns fed by one sequence per table. The API field
// "position" is stored in the "ordinal" column.
//
// There are no foreign keys. Parent existence and child guards are checked
// by the services so that the error kinds stay under their control.
//
// # Table[T]
//
// Every content entity shares one generic repository. An entity is described
// by a schema: table name, writable columns, the listquery.FieldMap of its
// list endpoint, and scan/values functions.
//
//	List(ctx, d)        SELECT ... WHERE <filter> ORDER BY <sort>, id LIMIT/OFFSET
//	Count(ctx, d)       SELECT COUNT(*) ... WHERE <filter>
//	Get(ctx, id)        → ResourceNotFoundError when missing
//	Create(ctx, item)   INSERT ... RETURNING
//	Update(ctx, id, item) UPDATE ... RETURNING  → ResourceNotFoundError when missing
//	Delete(ctx, id)     DELETE ... RETURNING    → ResourceNotFoundError when missing
//
// Unique constraint violations are reported as ConflictError.
//
// List and Count are two independent reads. Under concurrent writes the
// total may not match the returned page.
//
// # Transactions
//
// WithTx binds a fresh Store to one *sql.Tx. It is used by the progress
// service where a score change and a completion record must land together.
// Nested transactions are rejected.
//
// # QueryInterceptor
//
// All statements go through a QueryInterceptor that logs the SQL and its
// arguments at debug level under the "sql" logger.
package store
