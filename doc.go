// Package demofolio synthesizes deterministic demo financial data for a
// personal-finance application: seeded institutions and accounts, balance and
// performance time series, portfolio aggregates and cross-account rankings.
//
// Everything the package produces is a pure function of explicit inputs (user
// key, scope, timeframe, time bucket), so the same question always gets the
// same answer without storing a single generated point. The only persisted
// state is the per-user bundle of institutions and accounts.
//
// The core functionalities include:
//   - Deterministic Generation: a stable string hash and a seeded generator
//     that every piece of randomness is routed through.
//   - Catalog Management: first-run seeding of a realistic account set and
//     idempotent linking of additional institutions and accounts.
//   - Series Synthesis: backward random walks anchored exactly at an
//     account's current balance, with timeframe-appropriate volatility.
//   - Aggregation: portfolio totals, asset-class allocation, key movers and
//     per-account performance rankings that always agree with each other.
//   - Data Persistence: one human-readable JSON record per user under a
//     local store directory.
//
// This package serves as the foundational logic for the `dfo` command-line
// tool, which stands in for the consuming application's screens.
package demofolio
