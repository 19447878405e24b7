// Package models defines the core domain models for Salonbook.
//
// # Models
//
//   - Service: something the professional offers, with a price and a duration
//   - Appointment: a booking of one client on a date and time slot
//   - Bundle: the ordered set of services attached to one appointment
//
// There is a single professional, so appointments never reference a staff
// member or a resource. Dates are plain calendar strings (YYYY-MM-DD) and
// times are 24-hour wall-clock strings (HH:MM) in the business's local time.
//
// # Design Principles
//
// 1. **Snapshots over lookups**: an appointment's TotalPrice is frozen at booking
// time so later price changes don't rewrite history
// 2. **One representation for services**: the bundle is canonical, the primary
// service id is derived from it
// 3. **Avoid circular references**: use ID strings instead of pointers for relationships
package models
