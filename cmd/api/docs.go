package main

// @title           Gestor PME API
// @version         1.0
// @description     API de gestão para pequenas empresas: PDV, clientes, produtos, financeiro, orçamentos e serviços

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
