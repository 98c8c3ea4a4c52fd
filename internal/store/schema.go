package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL UNIQUE,
    income               REAL NOT NULL,
    savings_percent      REAL NOT NULL,
    annual_return        REAL NOT NULL,
    horizon_years        INTEGER NOT NULL,
    created_at           TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_updated ON scenarios(updated_at);
`
