package model

const ImagesCollection = "images"
