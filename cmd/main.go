package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/moscardini-carvalho/api-loja/internal/categoria"
	"github.com/moscardini-carvalho/api-loja/internal/cliente"
	"github.com/moscardini-carvalho/api-loja/internal/config"
	"github.com/moscardini-carvalho/api-loja/internal/database"
	"github.com/moscardini-carvalho/api-loja/internal/fornecedor"
	"github.com/moscardini-carvalho/api-loja/internal/middleware"
	"github.com/moscardini-carvalho/api-loja/internal/pedido"
	"github.com/moscardini-carvalho/api-loja/internal/produto"
)

func main() {
	formatter := new(logrus.TextFormatter)
	formatter.FullTimestamp = true
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	logrus.SetFormatter(formatter)

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("erro ao carregar configuração")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("erro ao conectar no banco")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("erro no AutoMigrate")
	}

	// Handlers
	categoriaHandler := categoria.NewHandler(db)
	clienteHandler := cliente.NewHandler(db)
	fornecedorHandler := fornecedor.NewHandler(db)
	produtoHandler := produto.NewHandler(db)
	pedidoHandler := pedido.NewHandler(db)

	// Router
	r := mux.NewRouter()

	// Rotas de categorias
	r.HandleFunc("/categorias", categoriaHandler.CriarCategoria).Methods("POST")
	r.HandleFunc("/categorias", categoriaHandler.ListarCategorias).Methods("GET")
	r.HandleFunc("/categorias/{id}", categoriaHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/categorias/{id}", categoriaHandler.AtualizarCategoria).Methods("PUT")
	r.HandleFunc("/categorias/{id}", categoriaHandler.DeletarCategoria).Methods("DELETE")

	// Rotas de clientes
	r.HandleFunc("/clientes", clienteHandler.CriarCliente).Methods("POST")
	r.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	r.HandleFunc("/clientes/{id}", clienteHandler.DeletarCliente).Methods("DELETE")

	// Rotas de fornecedores
	r.HandleFunc("/fornecedores", fornecedorHandler.CriarFornecedor).Methods("POST")
	r.HandleFunc("/fornecedores", fornecedorHandler.ListarFornecedores).Methods("GET")
	r.HandleFunc("/fornecedores/{id}", fornecedorHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/fornecedores/{id}", fornecedorHandler.AtualizarFornecedor).Methods("PUT")
	r.HandleFunc("/fornecedores/{id}", fornecedorHandler.DeletarFornecedor).Methods("DELETE")

	// Rotas de produtos (POST e PUT aceitam multipart com até 5 imagens)
	r.HandleFunc("/produtos", produtoHandler.CriarProduto).Methods("POST")
	r.HandleFunc("/produtos", produtoHandler.ListarProdutos).Methods("GET")
	r.HandleFunc("/produtos/{id:[0-9]+}", produtoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/produtos/{id:[0-9]+}", produtoHandler.AtualizarProduto).Methods("PUT")
	r.HandleFunc("/produtos/{id:[0-9]+}", produtoHandler.DeletarProduto).Methods("DELETE")
	r.HandleFunc("/produtos/{id:[0-9]+}/imagens", produtoHandler.ListarImagens).Methods("GET")
	r.HandleFunc("/imagens-produto/{id}", produtoHandler.ServirImagem).Methods("GET")
	r.HandleFunc("/imagens-produto/{id}", produtoHandler.DeletarImagem).Methods("DELETE")

	// Rotas de pedidos
	r.HandleFunc("/pedidos", pedidoHandler.CriarPedido).Methods("POST")
	r.HandleFunc("/pedidos", pedidoHandler.ListarPedidos).Methods("GET")
	r.HandleFunc("/pedidos/{id:[0-9]+}", pedidoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/pedidos/{id:[0-9]+}", pedidoHandler.AtualizarPedido).Methods("PUT")
	r.HandleFunc("/pedidos/{id:[0-9]+}", pedidoHandler.DeletarPedido).Methods("DELETE")

	// Itens do pedido (chave composta item + pedido)
	r.HandleFunc("/pedidos/{id:[0-9]+}/itens", pedidoHandler.CriarItem).Methods("POST")
	r.HandleFunc("/pedidos/{id:[0-9]+}/itens", pedidoHandler.ListarItens).Methods("GET")
	r.HandleFunc("/pedidos/{id:[0-9]+}/itens/{itemId}", pedidoHandler.BuscarItem).Methods("GET")
	r.HandleFunc("/pedidos/{id:[0-9]+}/itens/{itemId}", pedidoHandler.AtualizarItem).Methods("PUT")
	r.HandleFunc("/pedidos/{id:[0-9]+}/itens/{itemId}", pedidoHandler.DeletarItem).Methods("DELETE")

	// Fotos do pedido (busca e exclusão diretas pelo id da foto)
	r.HandleFunc("/pedidos/{id:[0-9]+}/fotos", pedidoHandler.UploadFoto).Methods("POST")
	r.HandleFunc("/pedidos/{id:[0-9]+}/fotos", pedidoHandler.ListarFotos).Methods("GET")
	r.HandleFunc("/pedidos/fotos/{fotoId}", pedidoHandler.ServirFoto).Methods("GET")
	r.HandleFunc("/pedidos/fotos/{fotoId}", pedidoHandler.DeletarFoto).Methods("DELETE")

	logrus.Infof("Servidor rodando em http://localhost:%s", cfg.HTTPPort)
	logrus.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, middleware.Encadear(r)))
}
