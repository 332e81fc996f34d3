// Package reporttemplate provides the Django/Pongo2-style template executor
// for soil report rendering.
//
// The embedded stv_direct_report template draws one gauge section per
// parameter from the metrics context; a custom template filesystem can be
// supplied for branded reports. Page breaks between bulk fragments are
// inserted by the exporter, not the template.
package reporttemplate
