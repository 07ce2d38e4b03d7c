// Comando dicri-api: servidor HTTP del Sistema de Gestión de Evidencias de la DICRI.
//
// Uso:
//
//	dicri-api            # equivalente a "dicri-api serve"
//	dicri-api serve      # levanta la API en HTTP_HOST:HTTP_PORT
//	dicri-api migrate    # aplica los scripts SQL embebidos (tablas, estados, sp_*)
package main

func main() {
	Execute()
}
