// Package pcb contains the PCB sizing core: IPC-2152 trace ampacity,
// via barrel sizing, Hammerstad-Jensen microstrip impedance, DC voltage
// drop, and the IPC-2221B clearance table. It never imports output, cli,
// or report; keep it domain-only.
//
// External outputs must not depend on the internal shape here; the
// outer module's pkg/api carries the stable wire types (JSON v1).
package pcb
